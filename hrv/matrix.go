package hrv

import (
	"runtime"
	"sync"

	"github.com/cwbudde/algo-hrv/rr"
)

// Stats summarizes one matrix build.
type Stats struct {
	Windows          int // complete windows produced by the windower
	Rows             int // rows emitted
	Dropped          int // windows rejected for insufficient data
	SpectralFailures int // emitted rows carrying substituted zero band powers
}

// BuildMatrix extracts one feature record per complete window of the
// series, preserving window order. Windows rejected for insufficient
// data are dropped silently; with default sizing every complete window
// clears the minimum, so the row count equals WindowCount. A
// Concurrency setting above 1 fans the windows out as in
// [Extractor.BuildMatrixParallel].
func (e *Extractor) BuildMatrix(series rr.Series) []Features {
	if e.cfg.Concurrency > 1 {
		return e.BuildMatrixParallel(series, e.cfg.Concurrency)
	}

	matrix, _ := e.BuildMatrixStats(series)

	return matrix
}

// BuildMatrixStats is BuildMatrix with per-build counters, serial
// regardless of the Concurrency setting.
func (e *Extractor) BuildMatrixStats(series rr.Series) ([]Features, Stats) {
	wins := Windows(series, e.cfg.Window, e.cfg.Step)
	if len(wins) == 0 {
		return nil, Stats{}
	}

	stats := Stats{Windows: len(wins)}
	out := make([]Features, 0, len(wins))

	for _, w := range wins {
		f, err := e.Extract(w)
		if err != nil {
			stats.Dropped++
			continue
		}

		if !f.SpectralOK {
			stats.SpectralFailures++
		}

		out = append(out, f)
	}

	stats.Rows = len(out)

	return out, stats
}

// BuildMatrixParallel is BuildMatrix with windows distributed across a
// bounded worker pool. Each window is independent, so results are
// written into their window slot and compacted afterwards; row order
// matches the sequential form exactly. workers <= 0 uses GOMAXPROCS.
func (e *Extractor) BuildMatrixParallel(series rr.Series, workers int) []Features {
	wins := Windows(series, e.cfg.Window, e.cfg.Step)
	if len(wins) == 0 {
		return nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if workers > len(wins) {
		workers = len(wins)
	}

	if workers == 1 {
		matrix, _ := e.BuildMatrixStats(series)
		return matrix
	}

	type slot struct {
		f  Features
		ok bool
	}

	results := make([]slot, len(wins))
	workCh := make(chan int, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range workCh {
				if f, err := e.Extract(wins[i]); err == nil {
					results[i] = slot{f: f, ok: true}
				}
			}
		}()
	}

	for i := range wins {
		workCh <- i
	}

	close(workCh)
	wg.Wait()

	out := make([]Features, 0, len(wins))

	for _, s := range results {
		if s.ok {
			out = append(out, s.f)
		}
	}

	return out
}
