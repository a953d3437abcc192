package analysis

import (
	gomath "math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates per-process values, skipping NaN.
type Summary struct {
	Count        int
	NaNs         int
	Mean         float64
	StdDev       float64
	Min          float64
	Max          float64
	MaxDeviation float64
}

// Summarize aggregates values. MaxDeviation is the largest |v - target|.
// With no finite values every statistic is NaN.
func Summarize(values []float64, target float64) Summary {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !gomath.IsNaN(v) {
			finite = append(finite, v)
		}
	}

	s := Summary{Count: len(finite), NaNs: len(values) - len(finite)}
	if len(finite) == 0 {
		nan := gomath.NaN()
		s.Mean, s.StdDev, s.Min, s.Max, s.MaxDeviation = nan, nan, nan, nan, nan
		return s
	}

	s.Mean = stat.Mean(finite, nil)
	s.StdDev = gomath.Sqrt(stat.PopVariance(finite, nil))
	s.Min = floats.Min(finite)
	s.Max = floats.Max(finite)
	s.MaxDeviation = gomath.Max(gomath.Abs(s.Max-target), gomath.Abs(s.Min-target))
	return s
}

// WithinTolerance reports whether every value lies within tol of target.
// NaN never passes.
func WithinTolerance(values []float64, target, tol float64) bool {
	for _, v := range values {
		if !(gomath.Abs(v-target) < tol) {
			return false
		}
	}
	return true
}
