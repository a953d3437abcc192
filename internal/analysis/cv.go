package analysis

import (
	gomath "math"

	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/pointproc/internal/events"
)

// CV computes the ISI coefficient of variation of every process in s.
func CV(s *events.Stream) []float64 {
	trains := s.Trains()
	out := make([]float64, len(trains))
	for id, train := range trains {
		out[id] = CVOf(train)
	}
	return out
}

// CVOf returns stddev/mean of the intervals of one train, or NaN with fewer
// than two intervals.
func CVOf(times []float64) float64 {
	isi := ISI(times)
	if len(isi) < 2 {
		return gomath.NaN()
	}
	mean, std := stat.MeanStdDev(isi, nil)
	if mean == 0 {
		return gomath.NaN()
	}
	return std / mean
}
