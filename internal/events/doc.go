// Package events provides the in-memory event stream the irregularity
// statistics operate on.
//
// A Stream is an ordered list of (time, process) pairs observed over
// [0, Horizon). Streams are immutable once built: every accessor returns a copy.
//
// Invariants:
//   - Times are finite, non-negative and non-decreasing (ties permitted)
//   - Process ids lie in [0, NumProcesses)
//   - Every time is strictly below the horizon
//
// Example Usage:
//
//	s, err := events.New(times, ids, 10.5, events.WithNumProcesses(4))
//	if err != nil {
//	    return err
//	}
//	train := s.ProcessTimes(2)
package events
