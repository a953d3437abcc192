package analysis

import (
	gomath "math"

	"github.com/GriffinCanCode/pointproc/internal/events"
)

// FanoFactor bins s into windows of the given width over [0, Horizon) and
// returns, per process, the population variance of the window counts divided
// by their mean. Processes without events get NaN. A non-positive window is
// an events.ErrInvalidArgument.
//
// Only occupied windows are materialised; empty ones contribute zeros to the
// moments, so memory tracks the event count rather than the window count.
func FanoFactor(s *events.Stream, window float64) ([]float64, error) {
	rows, err := s.NumWindows(window)
	if err != nil {
		return nil, err
	}

	trains := s.Trains()
	out := make([]float64, len(trains))
	for id, train := range trains {
		out[id] = fanoOf(binCounts(train, window, rows), float64(rows))
	}
	return out, nil
}

// binCounts returns the counts of the occupied windows of one train.
func binCounts(train []float64, window float64, rows int) map[int]float64 {
	bins := make(map[int]float64, len(train))
	for _, t := range train {
		j := int(t / window)
		if j >= rows {
			j = rows - 1
		}
		bins[j]++
	}
	return bins
}

// fanoOf computes variance/mean over n windows, of which only those in bins
// are non-empty.
func fanoOf(bins map[int]float64, n float64) float64 {
	var sum, sumSq float64
	for _, c := range bins {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return gomath.NaN()
	}

	mean := sum / n
	variance := gomath.Max((sumSq-sum*mean)/n, 0)
	return variance / mean
}
