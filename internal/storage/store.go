package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/twinpal/internal/bitstring"
	"github.com/san-kum/twinpal/internal/bmp"
	"github.com/san-kum/twinpal/internal/render"
	"github.com/san-kum/twinpal/internal/twin"
)

const (
	MetadataFile    = "metadata.json"
	ProportionsFile = "proportions.txt"
	PrimesFile      = "primes.txt"
	VisualFile      = "visual.txt"
	BitmapFile      = "visual.bmp"
	SVGFile         = "visual.svg"
	PNGFile         = "visual.png"
)

var ErrRunExists = errors.New("storage: run already exists")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	MinLength int               `json:"min_length"`
	MaxLength int               `json:"max_length"`
	Order     string            `json:"order"`
	Oracle    string            `json:"oracle"`
	Witnesses int               `json:"witnesses"`
	Seed      int64             `json:"seed"`
	Workers   int               `json:"workers"`
	Middles   int               `json:"middles"`
	Width     int               `json:"width"`
	Values    bool              `json:"values,omitempty"`
	Theme     string            `json:"theme,omitempty"`
	Elapsed   float64           `json:"elapsed_seconds"`
	Complete  bool              `json:"complete"`
	Stats     []twin.LengthStat `json:"stats,omitempty"`
	Artifacts []string          `json:"artifacts,omitempty"`
}

// Run is an open run directory. Proportions are appended as each length
// finishes, so an aborted run still leaves them on disk.
type Run struct {
	ID  string
	Dir string

	proportions *os.File
	err         error
}

// Create makes a new run directory named after the current time.
func (s *Store) Create(now time.Time) (*Run, error) {
	base := "run_" + now.Format("20060102_150405")
	id := base
	for i := 2; ; i++ {
		err := os.Mkdir(filepath.Join(s.baseDir, id), 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return nil, err
		}
		if i > 100 {
			return nil, fmt.Errorf("%w: %s", ErrRunExists, base)
		}
		id = fmt.Sprintf("%s_%d", base, i)
	}

	dir := filepath.Join(s.baseDir, id)
	f, err := os.Create(filepath.Join(dir, ProportionsFile))
	if err != nil {
		return nil, err
	}
	return &Run{ID: id, Dir: dir, proportions: f}, nil
}

// Open returns an existing run for rewriting its artifacts.
func (s *Store) Open(runID string) (*Run, error) {
	dir := filepath.Join(s.baseDir, runID)
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	return &Run{ID: runID, Dir: dir}, nil
}

// OnLength appends one proportion record. The first write error is kept
// and reported by Err and Close.
func (r *Run) OnLength(stat twin.LengthStat) {
	if r.err != nil || r.proportions == nil {
		return
	}
	_, r.err = fmt.Fprintln(r.proportions, twin.FormatProportion(stat.Length, stat.Fraction))
}

func (r *Run) Err() error { return r.err }

func (r *Run) Close() error {
	if r.proportions == nil {
		return r.err
	}
	err := r.proportions.Close()
	r.proportions = nil
	if r.err != nil {
		return r.err
	}
	return err
}

// Artifacts is the rendered output of a run.
type Artifacts struct {
	Ordered []twin.Middle
	// Values appends ",<decimal value>" to each primes line.
	Values bool
	Lines  []string
	Rug    *render.Grid
	SVG    string
	PNG    bool
}

// WriteArtifacts writes the primes, visual text and bitmap files, plus the
// optional SVG and PNG; an optional file not requested is removed. It
// returns the file names written.
func (r *Run) WriteArtifacts(a Artifacts) ([]string, error) {
	primes := make([]string, len(a.Ordered))
	for i, m := range a.Ordered {
		primes[i] = m.Bits
		if a.Values {
			primes[i] += "," + m.Value.String()
		}
	}

	written := []string{PrimesFile, VisualFile, BitmapFile}
	if err := writeLines(filepath.Join(r.Dir, PrimesFile), primes); err != nil {
		return nil, err
	}
	if err := writeLines(filepath.Join(r.Dir, VisualFile), a.Lines); err != nil {
		return nil, err
	}
	if err := writeImage(filepath.Join(r.Dir, BitmapFile), a.Rug, false); err != nil {
		return nil, err
	}

	if a.SVG != "" {
		if err := os.WriteFile(filepath.Join(r.Dir, SVGFile), []byte(a.SVG), 0644); err != nil {
			return nil, err
		}
		written = append(written, SVGFile)
	} else if err := removeStale(filepath.Join(r.Dir, SVGFile)); err != nil {
		return nil, err
	}
	if a.PNG {
		if err := writeImage(filepath.Join(r.Dir, PNGFile), a.Rug, true); err != nil {
			return nil, err
		}
		written = append(written, PNGFile)
	} else if err := removeStale(filepath.Join(r.Dir, PNGFile)); err != nil {
		return nil, err
	}
	return written, nil
}

// removeStale deletes an optional artifact left by an earlier render.
func removeStale(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (r *Run) SaveMetadata(meta *RunMetadata) error {
	meta.ID = r.ID
	f, err := os.Create(filepath.Join(r.Dir, MetadataFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeImage(path string, g *render.Grid, asPNG bool) error {
	if g == nil {
		g = render.NewGrid(0, 0)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if asPNG {
		return png.Encode(f, g)
	}
	return bmp.Encode(f, g)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, MetadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadMiddles reads primes.txt back, in file order.
func (s *Store) LoadMiddles(runID string) ([]twin.Middle, error) {
	lines, err := readLines(filepath.Join(s.baseDir, runID, PrimesFile))
	if err != nil {
		return nil, err
	}

	middles := make([]twin.Middle, 0, len(lines))
	for i, line := range lines {
		bits, _, _ := strings.Cut(line, ",")
		v, err := bitstring.Parse(bits)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", PrimesFile, i+1, err)
		}
		middles = append(middles, twin.Middle{Value: v, Bits: bits})
	}
	return middles, nil
}

func (s *Store) LoadProportions(runID string) (twin.Proportions, error) {
	lines, err := readLines(filepath.Join(s.baseDir, runID, ProportionsFile))
	if err != nil {
		return nil, err
	}

	p := make(twin.Proportions, len(lines))
	for i, line := range lines {
		length, fraction, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%s line %d: missing comma", ProportionsFile, i+1)
		}
		n, err := strconv.Atoi(length)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", ProportionsFile, i+1, err)
		}
		f, err := strconv.ParseFloat(fraction, 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", ProportionsFile, i+1, err)
		}
		p[n] = f
	}
	return p, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
