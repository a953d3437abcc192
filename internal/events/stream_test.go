package events

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid stream", func(t *testing.T) {
		s, err := New([]float64{0.1, 0.2, 0.2, 0.7}, []int{0, 2, 1, 0}, 1.0)
		require.NoError(t, err)

		assert.Equal(t, 4, s.Len())
		assert.Equal(t, 3, s.NumProcesses())
		assert.Equal(t, 1.0, s.Horizon())
		assert.Equal(t, []float64{0.1, 0.7}, s.ProcessTimes(0))
		assert.Equal(t, []float64{0.2}, s.ProcessTimes(2))
	})

	t.Run("explicit process count keeps silent processes", func(t *testing.T) {
		s, err := New([]float64{0.5}, []int{0}, 1.0, WithNumProcesses(5))
		require.NoError(t, err)
		assert.Equal(t, 5, s.NumProcesses())
		assert.Empty(t, s.ProcessTimes(4))
		assert.Len(t, s.Trains(), 5)
	})

	t.Run("empty stream", func(t *testing.T) {
		s, err := New(nil, nil, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, 0, s.NumProcesses())
	})

	invalid := []struct {
		name      string
		times     []float64
		processes []int
		horizon   float64
		opts      []Option
	}{
		{"length mismatch", []float64{0.1, 0.2}, []int{0}, 1, nil},
		{"decreasing times", []float64{0.3, 0.2}, []int{0, 0}, 1, nil},
		{"negative time", []float64{-0.1}, []int{0}, 1, nil},
		{"nan time", []float64{math.NaN()}, []int{0}, 1, nil},
		{"time at horizon", []float64{0.1, 1.0}, []int{0, 0}, 1, nil},
		{"negative process", []float64{0.1}, []int{-1}, 1, nil},
		{"process beyond count", []float64{0.1}, []int{3}, 1, []Option{WithNumProcesses(3)}},
		{"infinite horizon", []float64{0.1}, []int{0}, math.Inf(1), nil},
		{"zero horizon without events", nil, nil, 0, nil},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.times, tc.processes, tc.horizon, tc.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestStreamCopies(t *testing.T) {
	times := []float64{0.1, 0.2}
	s, err := New(times, []int{0, 1}, 1)
	require.NoError(t, err)

	times[0] = 0.15
	assert.Equal(t, 0.1, s.Times()[0])

	got := s.Times()
	got[1] = 99
	assert.Equal(t, 0.2, s.Times()[1])
}

func TestFromEvents(t *testing.T) {
	s, err := FromEvents([]Event{
		{Time: 0.5, Process: 1},
		{Time: 0.1, Process: 0},
		{Time: 0.3, Process: 1},
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.1, 0.3, 0.5}, s.Times())
	assert.Equal(t, []int{0, 1, 1}, s.Processes())
	assert.Equal(t, Event{Time: 0.3, Process: 1}, s.Events()[1])
}

func TestNumWindows(t *testing.T) {
	s, err := New([]float64{0.1, 2.4}, []int{0, 1}, 2.5)
	require.NoError(t, err)

	n, err := s.NumWindows(1.0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = s.NumWindows(1e-12)
	require.NoError(t, err)
	assert.Greater(t, n, 2_000_000_000_000)

	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1), 1e-300} {
		_, err := s.NumWindows(w)
		assert.ErrorIs(t, err, ErrInvalidArgument, "window %v", w)
	}
}

func TestClip(t *testing.T) {
	s, err := New([]float64{0.1, 0.4, 0.6, 1.2}, []int{0, 1, 0, 2}, 2)
	require.NoError(t, err)

	clipped, err := s.Clip(0.4, 1.2)
	require.NoError(t, err)

	assert.Equal(t, 2, clipped.Len())
	assert.Equal(t, 3, clipped.NumProcesses())
	assert.InDelta(t, 0.8, clipped.Horizon(), 1e-12)
	assert.InDelta(t, 0.0, clipped.Times()[0], 1e-12)
	assert.InDelta(t, 0.2, clipped.Times()[1], 1e-12)

	_, err = s.Clip(1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = s.Clip(0, 2.5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
