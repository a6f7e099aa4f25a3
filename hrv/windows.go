package hrv

import "github.com/cwbudde/algo-hrv/rr"

// Windows slices series into contiguous segments of the given length,
// advancing by step beats. Segments share the series backing array; the
// extractor never mutates them. A series shorter than one window yields
// an empty result, not an error.
func Windows(series rr.Series, window, step int) []rr.Series {
	count := WindowCount(len(series), window, step)
	if count == 0 {
		return nil
	}

	out := make([]rr.Series, 0, count)
	for start := 0; start+window <= len(series); start += step {
		out = append(out, series[start:start+window])
	}

	return out
}

// WindowCount returns the number of complete windows a series of length
// n yields: floor((n-window)/step)+1, or 0 when n < window.
func WindowCount(n, window, step int) int {
	if window <= 0 || step <= 0 || n < window {
		return 0
	}

	return (n-window)/step + 1
}
