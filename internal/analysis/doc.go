// Package analysis measures the irregularity of point processes.
//
// Measures, each returned per process and indexed by process id:
//   - LV: local variation of consecutive inter-spike intervals
//   - FanoFactor: variance-to-mean ratio of windowed event counts
//   - CV: coefficient of variation of inter-spike intervals
//
// All three are close to 1 for a Poisson process. A process with too few
// events for a measure gets NaN rather than an error, so callers aggregating
// results must tolerate NaN (Summarize skips it).
//
// Built on gonum.org/v1/gonum (stat, floats, mat).
package analysis
