package generator

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source draws uniform variates from the open interval (0,1).
type Source interface {
	Uniform() float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() float64

// Uniform calls f.
func (f SourceFunc) Uniform() float64 { return f() }

type distSource struct {
	dist distuv.Uniform
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed uint64) Source {
	return &distSource{
		dist: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
		},
	}
}

// Uniform redraws exact zeros so callers can take the logarithm safely.
func (s *distSource) Uniform() float64 {
	for {
		if u := s.dist.Rand(); u > 0 && u < 1 {
			return u
		}
	}
}
