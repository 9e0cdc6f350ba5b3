package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/twinpal/internal/config"
	"github.com/san-kum/twinpal/internal/primality"
)

var version = "dev"

// defaultExactBits keeps trial division to about 2^25 candidate divisors.
const defaultExactBits = 50

var (
	dataDir   string
	logLevel  string
	minLength int
	maxLength int
	orderName string
	oracle    string
	witnesses int
	seed      int64
	workers   int
	cacheSize int
	values    bool
	svgOut    bool
	pngOut    bool
	theme     string
	// Config file
	configFile string
	// Preset name
	preset string
	quiet  bool
	// render/view
	viewOrder string
	// check
	exactBits int
	// export
	format string
	output string
)

// main registers commands and flags; with no subcommand it performs a default run.
func main() {
	rootCmd := &cobra.Command{
		Use:           "twinpal",
		Short:         "binary palindromes that sit between twin primes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
		RunE: runSurvey,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".twinpal", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "search palindromes and render the rug",
		Args:  cobra.NoArgs,
		RunE:  runSurvey,
	}
	addRunFlags(rootCmd)
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot qualifying fraction per length",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "re-order a stored run and rewrite its visual artifacts",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVar(&viewOrder, "order", "", "ordering policy (default: the run's)")
	renderCmd.Flags().StringVar(&theme, "theme", "", "color theme for the images")
	renderCmd.Flags().BoolVar(&svgOut, "svg", false, "also write visual.svg")
	renderCmd.Flags().BoolVar(&pngOut, "png", false, "also write visual.png")

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "browse a stored run interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  viewRun,
	}
	viewCmd.Flags().StringVar(&viewOrder, "order", "", "initial ordering policy")
	viewCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run proportions and middles",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json, csv)")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	checkCmd := &cobra.Command{
		Use:   "check [number...]",
		Short: "test numbers with both primality oracles",
		Long:  "Numbers are decimal, or binary with a 0b prefix.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  checkNumbers,
	}
	checkCmd.Flags().IntVar(&witnesses, "witnesses", config.DefaultWitnesses, "Miller-Rabin rounds")
	checkCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "Miller-Rabin seed")
	checkCmd.Flags().IntVar(&exactBits, "exact-bits", defaultExactBits, "skip trial division above this many bits")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("twinpal", version)
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, renderCmd, viewCmd, exportCmd, checkCmd, presetsCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&minLength, "min", config.DefaultMinLength, "smallest bit-length")
	f.IntVar(&maxLength, "max", config.DefaultMaxLength, "largest bit-length")
	f.StringVar(&orderName, "order", config.DefaultConfig().Order, "ordering policy (raw, trim-start, trim-both)")
	f.StringVar(&oracle, "oracle", primality.KindMillerRabin, "primality oracle (miller-rabin, exact)")
	f.IntVar(&witnesses, "witnesses", config.DefaultWitnesses, "Miller-Rabin rounds")
	f.Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	f.IntVar(&workers, "workers", config.DefaultWorkers, "workers per bit-length")
	f.IntVar(&cacheSize, "cache-size", 0, "exact-check memo capacity (0 = unbounded)")
	f.BoolVar(&values, "values", false, "append decimal values to primes.txt")
	f.BoolVar(&svgOut, "svg", false, "also write visual.svg")
	f.BoolVar(&pngOut, "png", false, "also write visual.png")
	f.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.BoolVarP(&quiet, "quiet", "q", false, "suppress console progress and art")
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.MinLength = minLength
	}
	if flags.Changed("max") {
		cfg.MaxLength = maxLength
	}
	if flags.Changed("order") {
		cfg.Order = orderName
	}
	if flags.Changed("oracle") {
		cfg.Oracle = oracle
	}
	if flags.Changed("witnesses") {
		cfg.Witnesses = witnesses
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("cache-size") {
		cfg.CacheSize = cacheSize
	}
	if flags.Changed("values") {
		cfg.Output.Values = values
	}
	if flags.Changed("svg") {
		cfg.Output.SVG = svgOut
	}
	if flags.Changed("png") {
		cfg.Output.PNG = pngOut
	}
	if flags.Changed("theme") {
		cfg.Output.Theme = theme
	}
	if cfg.LogLevel != "" && !flags.Changed("log-level") {
		if err := setupLogging(cfg.LogLevel); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
