package analysis

import (
	gomath "math"

	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/pointproc/internal/events"
)

// LV computes the local variation of every process in s.
func LV(s *events.Stream) []float64 {
	trains := s.Trains()
	out := make([]float64, len(trains))
	for id, train := range trains {
		out[id] = LVOf(train)
	}
	return out
}

// LVOf computes the local variation of a single ordered train:
//
//	LV = mean over k of 3 (I_k - I_{k+1})^2 / (I_k + I_{k+1})^2
//
// Trains with fewer than three events return NaN. So does a train with two
// consecutive zero-length intervals (three tied event times), whose term is 0/0.
func LVOf(times []float64) float64 {
	isi := ISI(times)
	if len(isi) < 2 {
		return gomath.NaN()
	}

	terms := make([]float64, len(isi)-1)
	for k := range terms {
		diff := isi[k] - isi[k+1]
		sum := isi[k] + isi[k+1]
		terms[k] = 3 * diff * diff / (sum * sum)
	}
	return stat.Mean(terms, nil)
}
