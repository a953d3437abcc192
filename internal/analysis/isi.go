package analysis

import "gonum.org/v1/gonum/floats"

// ISI returns the intervals between consecutive times. Fewer than two times
// yield an empty slice.
func ISI(times []float64) []float64 {
	if len(times) < 2 {
		return []float64{}
	}
	n := len(times) - 1
	return floats.SubTo(make([]float64, n), times[1:], times[:n])
}
