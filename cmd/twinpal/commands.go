package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/twinpal/internal/bitstring"
	"github.com/san-kum/twinpal/internal/config"
	"github.com/san-kum/twinpal/internal/order"
	"github.com/san-kum/twinpal/internal/palindrome"
	"github.com/san-kum/twinpal/internal/primality"
	"github.com/san-kum/twinpal/internal/render"
	"github.com/san-kum/twinpal/internal/storage"
	"github.com/san-kum/twinpal/internal/survey"
	"github.com/san-kum/twinpal/internal/twin"
	"github.com/san-kum/twinpal/internal/viz"
)

func runSurvey(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}
	scfg := cfg.Survey()
	if err := scfg.Validate(); err != nil {
		return err
	}
	th := viz.GetTheme(cfg.Output.Theme)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	run, err := st.Create(time.Now())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	meta := &storage.RunMetadata{
		Timestamp: time.Now(),
		MinLength: scfg.MinLength,
		MaxLength: scfg.MaxLength,
		Order:     string(policy),
		Oracle:    scfg.Oracle,
		Witnesses: scfg.Witnesses,
		Seed:      scfg.Seed,
		Workers:   scfg.Workers,
		Values:    cfg.Output.Values,
		Theme:     th.Name,
	}

	console := viz.NewConsole(os.Stdout, th, scfg.MaxLength, viz.TerminalWidth(0), quiet)
	slog.Info("run started", "id", run.ID, "min", scfg.MinLength, "max", scfg.MaxLength, "oracle", scfg.Oracle, "order", policy)

	result, err := survey.Run(ctx, scfg, console, run)
	if closeErr := run.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("write proportions: %w", closeErr)
	}
	if result != nil {
		meta.Stats = result.Stats
		meta.Elapsed = result.Elapsed.Seconds()
		meta.Middles = result.Middles.Len()
	}
	if err != nil {
		if saveErr := run.SaveMetadata(meta); saveErr != nil {
			slog.Warn("could not save metadata of aborted run", "id", run.ID, "err", saveErr)
		}
		return err
	}

	ordered, err := order.Sort(result.Middles.Middles(), policy)
	if err != nil {
		return err
	}
	art := buildArtifacts(ordered, cfg.Output.Values, th, cfg.Output.SVG, cfg.Output.PNG, cfg.Output.SVGScale)
	meta.Width = render.Width(ordered)
	meta.Artifacts, err = run.WriteArtifacts(art)
	if err != nil {
		return err
	}
	meta.Complete = true
	if err := run.SaveMetadata(meta); err != nil {
		return err
	}

	console.Rug(art.Lines)
	slog.Info("run complete", "id", run.ID, "middles", meta.Middles, "elapsed", result.Elapsed, "cache_hits", result.CacheHits)
	console.Separator()
	console.Printf("run id: %s", run.ID)
	console.Printf("middles: %d  width: %d  elapsed: %v", meta.Middles, meta.Width, result.Elapsed.Round(time.Millisecond))
	return nil
}

func buildArtifacts(ordered []twin.Middle, withValues bool, th viz.Theme, svg, png bool, scale float64) storage.Artifacts {
	width := render.Width(ordered)
	art := storage.Artifacts{
		Ordered: ordered,
		Values:  withValues,
		Lines:   render.ASCII(ordered, width),
		Rug:     render.Rug(ordered, width, th.Image),
		PNG:     png,
	}
	if svg {
		if scale <= 0 {
			scale = config.DefaultSVGScale
		}
		art.SVG = render.SVG(art.Rug, scale, th.Image)
	}
	return art
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tLENGTHS\tORACLE\tORDER\tMIDDLES\tSTATUS")

	for _, run := range runs {
		status := "complete"
		if !run.Complete {
			status = "aborted"
		}
		fmt.Fprintf(w, "%s\t%s\t%d..%d\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.MinLength,
			run.MaxLength,
			run.Oracle,
			run.Order,
			run.Middles,
			status,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	p, err := st.LoadProportions(runID)
	if err != nil {
		return err
	}
	if len(p) == 0 {
		return fmt.Errorf("no data to plot")
	}

	width := viz.TerminalWidth(80) - 12
	if width < 20 {
		width = 20
	}

	console := viz.NewConsole(os.Stdout, viz.GetTheme(meta.Theme), meta.MaxLength, width, false)
	console.Printf("run: %s", meta.ID)
	console.Printf("oracle: %s", meta.Oracle)
	console.Printf("middles: %d", meta.Middles)
	console.Separator()
	fmt.Println(viz.PlotProportions(p, width, 12))
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	middles, err := st.LoadMiddles(runID)
	if err != nil {
		return err
	}

	name := meta.Order
	if cmd.Flags().Changed("order") {
		name = viewOrder
	}
	policy, err := order.Parse(name)
	if err != nil {
		return err
	}
	themeName := meta.Theme
	if cmd.Flags().Changed("theme") {
		themeName = theme
	}
	th := viz.GetTheme(themeName)

	ordered, err := order.Sort(middles, policy)
	if err != nil {
		return err
	}
	run, err := st.Open(runID)
	if err != nil {
		return err
	}
	art := buildArtifacts(ordered, meta.Values, th, svgOut, pngOut, config.DefaultSVGScale)
	if meta.Artifacts, err = run.WriteArtifacts(art); err != nil {
		return err
	}
	meta.Order = string(policy)
	meta.Theme = th.Name
	meta.Width = render.Width(ordered)
	if err := run.SaveMetadata(meta); err != nil {
		return err
	}

	slog.Info("rendered", "id", runID, "order", policy, "theme", th.Name)
	fmt.Printf("rendered %s with %s ordering: %s\n", runID, policy, strings.Join(meta.Artifacts, ", "))
	return nil
}

func viewRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	middles, err := st.LoadMiddles(runID)
	if err != nil {
		return err
	}

	name := meta.Order
	if viewOrder != "" {
		name = viewOrder
	}
	policy, err := order.Parse(name)
	if err != nil {
		return err
	}

	return viz.RunViewer(viz.NewViewer(runID, middles, policy, viz.GetTheme(theme)))
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	data, err := st.Export(args[0])
	if err != nil {
		return err
	}

	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		return storage.ExportJSON(w, data)
	case "csv":
		return storage.ExportCSV(w, data)
	default:
		return fmt.Errorf("unknown format: %s (available: json, csv)", format)
	}
}

// parseNumber accepts decimal or 0b-prefixed binary.
func parseNumber(s string) (*big.Int, error) {
	if bits, ok := strings.CutPrefix(s, "0b"); ok {
		return bitstring.Parse(bits)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("not a decimal number: %q", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("negative number: %s", s)
	}
	return v, nil
}

type checkResult struct {
	Value      *big.Int
	Bits       string
	Palindrome bool
	Prime      map[string]bool
	Middle     map[string]bool
	// Skipped names the exact oracle when v+1 exceeds the bit limit.
	Skipped map[string]bool
}

// check runs every tester on v and its neighbours. Trial division is
// skipped once v+1 is wider than exactBits.
func check(v *big.Int, testers []primality.Tester, exactBits int) (checkResult, error) {
	bits := bitstring.Format(v, 1)
	res := checkResult{
		Value:      v,
		Bits:       bits,
		Palindrome: palindrome.IsPalindrome(bits),
		Prime:      make(map[string]bool, len(testers)),
		Middle:     make(map[string]bool, len(testers)),
		Skipped:    make(map[string]bool, len(testers)),
	}
	above := new(big.Int).Add(v, big.NewInt(1))
	for _, t := range testers {
		if t.Name() == primality.KindExact && above.BitLen() > exactBits {
			res.Skipped[t.Name()] = true
			continue
		}
		res.Prime[t.Name()] = t.IsPrime(v)
		_, ok, err := twin.Qualifies(t, bits)
		if err != nil {
			return res, err
		}
		res.Middle[t.Name()] = ok
	}
	return res, nil
}

func checkNumbers(cmd *cobra.Command, args []string) error {
	mr, err := primality.New(primality.KindMillerRabin, witnesses, seed, nil)
	if err != nil {
		return err
	}
	testers := []primality.Tester{mr, primality.NewExact(primality.NewCache(0))}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "NUMBER\tBITS\tPALINDROME")
	for _, t := range testers {
		fmt.Fprintf(w, "\tPRIME(%s)\tMIDDLE(%s)", t.Name(), t.Name())
	}
	fmt.Fprintln(w)

	var errs []error
	for _, arg := range args {
		v, err := parseNumber(arg)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", arg, err))
			continue
		}
		res, err := check(v, testers, exactBits)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", arg, err))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%v", res.Value, res.Bits, res.Palindrome)
		for _, t := range testers {
			if res.Skipped[t.Name()] {
				fmt.Fprint(w, "\tn/a\tn/a")
				continue
			}
			fmt.Fprintf(w, "\t%v\t%v", res.Prime[t.Name()], res.Middle[t.Name()])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tLENGTHS\tORACLE\tORDER\tWORKERS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d..%d\t%s\t%s\t%d\n", name, p.MinLength, p.MaxLength, p.Oracle, p.Order, p.Workers)
	}
	return w.Flush()
}
