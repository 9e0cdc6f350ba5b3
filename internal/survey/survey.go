// Package survey drives the palindrome twin-prime search across a range of
// bit-lengths.
package survey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/twinpal/internal/palindrome"
	"github.com/san-kum/twinpal/internal/primality"
	"github.com/san-kum/twinpal/internal/twin"
)

const (
	DefaultMinLength = 1
	DefaultMaxLength = 39
)

var ErrInvalidConfig = errors.New("survey: invalid config")

type Config struct {
	MinLength int
	MaxLength int
	Workers   int
	Oracle    string
	Witnesses int
	Seed      int64
	// CacheSize bounds the exact-check memo; 0 is unbounded.
	CacheSize int
}

func DefaultConfig() Config {
	return Config{
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
		Workers:   1,
		Oracle:    primality.KindMillerRabin,
		Witnesses: primality.DefaultWitnesses,
		Seed:      1,
	}
}

func (c Config) Validate() error {
	if c.MinLength < 1 {
		return fmt.Errorf("%w: min length must be at least 1, got %d", ErrInvalidConfig, c.MinLength)
	}
	if c.MaxLength < c.MinLength {
		return fmt.Errorf("%w: max length %d below min length %d", ErrInvalidConfig, c.MaxLength, c.MinLength)
	}
	if c.MaxLength > palindrome.MaxLength {
		return fmt.Errorf("%w: max length %d above %d", ErrInvalidConfig, c.MaxLength, palindrome.MaxLength)
	}
	if c.Witnesses < 1 {
		return fmt.Errorf("%w: witnesses must be positive, got %d", ErrInvalidConfig, c.Witnesses)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache size must not be negative, got %d", ErrInvalidConfig, c.CacheSize)
	}
	if _, err := primality.New(c.Oracle, c.Witnesses, c.Seed, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Observer is notified after each bit-length completes.
type Observer interface {
	OnLength(stat twin.LengthStat)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(stat twin.LengthStat)

func (f ObserverFunc) OnLength(stat twin.LengthStat) { f(stat) }

type Result struct {
	Middles     *twin.Accumulator
	Proportions twin.Proportions
	Stats       []twin.LengthStat
	Elapsed     time.Duration
	CacheHits   int
}

// Run processes lengths MinLength..MaxLength in order. Any error aborts the
// run; the partial result is returned alongside it.
func Run(ctx context.Context, cfg Config, observers ...Observer) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cache := primality.NewCache(cfg.CacheSize)
	result := &Result{
		Middles:     twin.NewAccumulator(),
		Proportions: make(twin.Proportions),
		Stats:       make([]twin.LengthStat, 0, cfg.MaxLength-cfg.MinLength+1),
	}

	start := time.Now()
	defer func() { result.Elapsed = time.Since(start) }()

	for n := cfg.MinLength; n <= cfg.MaxLength; n++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		stat, err := twin.ProcessLength(ctx, result.Middles, n, testerFactory(cfg, n, cache), cfg.Workers)
		if err != nil {
			return result, fmt.Errorf("length %d: %w", n, err)
		}

		result.Proportions[n] = stat.Fraction
		result.Stats = append(result.Stats, stat)
		slog.Debug("length done", "length", n, "candidates", stat.Candidates, "qualified", stat.Qualified)

		for _, obs := range observers {
			obs.OnLength(stat)
		}
	}

	result.CacheHits, _ = cache.Stats()
	return result, nil
}

// testerFactory derives a distinct reproducible seed per length and worker.
func testerFactory(cfg Config, length int, cache *primality.Cache) twin.TesterFactory {
	return func(worker int) primality.Tester {
		seed := cfg.Seed*1_000_003 + int64(length)*131 + int64(worker)
		t, err := primality.New(cfg.Oracle, cfg.Witnesses, seed, cache)
		if err != nil {
			// Validate already accepted cfg.Oracle.
			panic(err)
		}
		return t
	}
}
