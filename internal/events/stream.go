package events

import (
	"fmt"
	gomath "math"
	"sort"
)

// Event is a single occurrence of process Process at time Time.
type Event struct {
	Time    float64 `json:"time" yaml:"time" toml:"time"`
	Process int     `json:"process" yaml:"process" toml:"process"`
}

// Stream is a time-ordered sequence of events bounded by a horizon.
type Stream struct {
	times        []float64
	processes    []int
	horizon      float64
	numProcesses int
}

// Option configures stream construction.
type Option func(*options)

type options struct {
	numProcesses int
}

// WithNumProcesses fixes the process count. Without it the count is
// inferred as the largest id plus one, so trailing silent processes vanish.
func WithNumProcesses(n int) Option {
	return func(o *options) {
		o.numProcesses = n
	}
}

// New validates and builds a stream. The input slices are copied.
func New(times []float64, processes []int, horizon float64, opts ...Option) (*Stream, error) {
	o := options{numProcesses: -1}
	for _, opt := range opts {
		opt(&o)
	}

	if len(times) != len(processes) {
		return nil, fmt.Errorf("times and processes differ in length (%d != %d): %w",
			len(times), len(processes), ErrInvalidArgument)
	}
	if gomath.IsNaN(horizon) || gomath.IsInf(horizon, 0) {
		return nil, fmt.Errorf("horizon must be finite: %w", ErrInvalidArgument)
	}

	maxID := -1
	for i, t := range times {
		if gomath.IsNaN(t) || gomath.IsInf(t, 0) || t < 0 {
			return nil, fmt.Errorf("times[%d] = %v is not a finite non-negative time: %w", i, t, ErrInvalidArgument)
		}
		if i > 0 && t < times[i-1] {
			return nil, fmt.Errorf("times[%d] = %v precedes times[%d] = %v: %w", i, t, i-1, times[i-1], ErrInvalidArgument)
		}
		if t >= horizon {
			return nil, fmt.Errorf("times[%d] = %v is not below horizon %v: %w", i, t, horizon, ErrInvalidArgument)
		}
		id := processes[i]
		if id < 0 {
			return nil, fmt.Errorf("processes[%d] = %d is negative: %w", i, id, ErrInvalidArgument)
		}
		if id > maxID {
			maxID = id
		}
	}

	n := maxID + 1
	if o.numProcesses >= 0 {
		if maxID >= o.numProcesses {
			return nil, fmt.Errorf("process id %d outside [0, %d): %w", maxID, o.numProcesses, ErrInvalidArgument)
		}
		n = o.numProcesses
	}
	if horizon <= 0 && len(times) == 0 {
		return nil, fmt.Errorf("horizon must be positive: %w", ErrInvalidArgument)
	}

	s := &Stream{
		times:        make([]float64, len(times)),
		processes:    make([]int, len(processes)),
		horizon:      horizon,
		numProcesses: n,
	}
	copy(s.times, times)
	copy(s.processes, processes)
	return s, nil
}

// FromEvents builds a stream from events that may be unordered. Events are
// stable-sorted by time first.
func FromEvents(evs []Event, horizon float64, opts ...Option) (*Stream, error) {
	sorted := make([]Event, len(evs))
	copy(sorted, evs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	times := make([]float64, len(sorted))
	processes := make([]int, len(sorted))
	for i, ev := range sorted {
		times[i] = ev.Time
		processes[i] = ev.Process
	}
	return New(times, processes, horizon, opts...)
}

// Len returns the number of events.
func (s *Stream) Len() int { return len(s.times) }

// NumProcesses returns the number of processes, silent ones included.
func (s *Stream) NumProcesses() int { return s.numProcesses }

// Horizon returns the exclusive upper bound of the observation window.
func (s *Stream) Horizon() float64 { return s.horizon }

// Times returns a copy of all event times in stream order.
func (s *Stream) Times() []float64 {
	out := make([]float64, len(s.times))
	copy(out, s.times)
	return out
}

// Processes returns a copy of all process ids in stream order.
func (s *Stream) Processes() []int {
	out := make([]int, len(s.processes))
	copy(out, s.processes)
	return out
}

// Events returns the stream as a slice of events.
func (s *Stream) Events() []Event {
	out := make([]Event, len(s.times))
	for i := range s.times {
		out[i] = Event{Time: s.times[i], Process: s.processes[i]}
	}
	return out
}

// ProcessTimes returns the event times of one process in temporal order.
// Unknown ids yield an empty slice.
func (s *Stream) ProcessTimes(id int) []float64 {
	out := []float64{}
	for i, p := range s.processes {
		if p == id {
			out = append(out, s.times[i])
		}
	}
	return out
}

// Trains splits the stream into one time slice per process.
func (s *Stream) Trains() [][]float64 {
	trains := make([][]float64, s.numProcesses)
	for i := range trains {
		trains[i] = []float64{}
	}
	for i, p := range s.processes {
		trains[p] = append(trains[p], s.times[i])
	}
	return trains
}

// maxWindows bounds NumWindows so every window index is an exact float64.
const maxWindows = 1 << 53

// NumWindows returns how many windows of the given width cover [0, Horizon).
// Widths so small that the count cannot be represented exactly are rejected.
func (s *Stream) NumWindows(window float64) (int, error) {
	if gomath.IsNaN(window) || gomath.IsInf(window, 0) || window <= 0 {
		return 0, fmt.Errorf("window %v must be positive and finite: %w", window, ErrInvalidArgument)
	}
	n := gomath.Ceil(s.horizon / window)
	if n > maxWindows {
		return 0, fmt.Errorf("window %v splits horizon %v into too many windows: %w", window, s.horizon, ErrInvalidArgument)
	}
	if n < 1 {
		return 0, fmt.Errorf("no windows of width %v fit horizon %v: %w", window, s.horizon, ErrInvalidArgument)
	}
	return int(n), nil
}

// Clip returns the events in [start, stop) shifted so start maps to zero.
// The range must lie within [0, Horizon]. The process count is preserved.
func (s *Stream) Clip(start, stop float64) (*Stream, error) {
	if start < 0 || stop <= start || stop > s.horizon {
		return nil, fmt.Errorf("clip range [%v, %v) is empty or outside [0, %v]: %w", start, stop, s.horizon, ErrInvalidArgument)
	}

	lo := sort.SearchFloat64s(s.times, start)
	hi := sort.SearchFloat64s(s.times, stop)

	times := make([]float64, 0, hi-lo)
	processes := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		times = append(times, s.times[i]-start)
		processes = append(processes, s.processes[i])
	}
	return New(times, processes, stop-start, WithNumProcesses(s.numProcesses))
}
