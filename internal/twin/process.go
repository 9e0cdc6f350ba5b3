package twin

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/twinpal/internal/palindrome"
	"github.com/san-kum/twinpal/internal/primality"
)

// minChunk is the smallest candidate slice worth handing to a goroutine.
const minChunk = 256

// TesterFactory returns the tester used by one worker. Workers never share
// a tester.
type TesterFactory func(worker int) primality.Tester

type chunkResult struct {
	middles []Middle
	err     error
}

// ProcessLength tests every palindrome of length n, adds the middles to acc
// in generation order and returns the length summary. Candidates are built
// by index inside each worker, so memory stays proportional to the middles.
func ProcessLength(ctx context.Context, acc *Accumulator, n int, newTester TesterFactory, workers int) (LengthStat, error) {
	count, err := palindrome.Count(n)
	if err != nil {
		return LengthStat{}, err
	}
	if count > math.MaxInt {
		return LengthStat{}, fmt.Errorf("length %d: %d candidates overflow int", n, count)
	}
	total := int(count)

	workers = workerCount(total, minChunk, workers)
	chunks := make([]chunkResult, workers)

	parallelFor(total, workers, func(worker, start, end int) {
		res := &chunks[worker]
		t := newTester(worker)
		for i := start; i < end; i++ {
			if (i-start)%minChunk == 0 && ctx.Err() != nil {
				res.err = ctx.Err()
				return
			}
			m, ok, err := Qualifies(t, palindrome.Nth(n, uint64(i)))
			if err != nil {
				res.err = err
				return
			}
			if ok {
				res.middles = append(res.middles, m)
			}
		}
	})

	stat := LengthStat{Length: n, Candidates: total}
	for _, c := range chunks {
		if c.err != nil {
			return stat, c.err
		}
	}
	for _, c := range chunks {
		for _, m := range c.middles {
			acc.Add(m)
		}
		stat.Qualified += len(c.middles)
	}
	if stat.Candidates > 0 {
		stat.Fraction = float64(stat.Qualified) / float64(stat.Candidates)
	}
	return stat, nil
}

// workerCount caps the requested workers so each gets at least minChunk items.
func workerCount(n, minChunk, requested int) int {
	if n <= minChunk || requested <= 1 {
		return 1
	}
	workers := requested
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// parallelFor splits [0, n) into contiguous chunks, one per worker.
func parallelFor(n, workers int, fn func(worker, start, end int)) {
	if workers <= 1 {
		fn(0, 0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start > end {
			start = end
		}

		go func(w, s, e int) {
			defer wg.Done()
			fn(w, s, e)
		}(w, start, end)
	}

	wg.Wait()
}
