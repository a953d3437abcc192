// Package testutil provides testing utilities for the generator and analysis packages.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockSource is a mock implementation of generator.Source for testing.
type MockSource struct {
	mock.Mock
}

// Uniform mocks the Uniform method.
func (m *MockSource) Uniform() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

// NewIntervalSource returns a mock whose draws produce exactly the given
// unit-rate inter-event intervals, in order.
func NewIntervalSource(t *testing.T, intervals ...float64) *MockSource {
	t.Helper()
	m := new(MockSource)
	for _, isi := range intervals {
		m.On("Uniform").Return(math.Exp(-isi)).Once()
	}
	return m
}

// AssertAllClose fails unless every value lies within tol of target.
func AssertAllClose(t *testing.T, values []float64, target, tol float64) {
	t.Helper()
	for i, v := range values {
		if !(math.Abs(v-target) < tol) {
			t.Fatalf("values[%d] = %v, want within %v of %v", i, v, tol, target)
		}
	}
}

// AssertNaN fails unless v is NaN.
func AssertNaN(t *testing.T, v float64) {
	t.Helper()
	if !math.IsNaN(v) {
		t.Fatalf("expected NaN, got %v", v)
	}
}
