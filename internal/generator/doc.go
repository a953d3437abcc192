// Package generator produces synthetic Poisson spike trains.
//
// Each process draws exponential inter-event intervals (-ln(u)/rate with u
// uniform on the open interval (0,1)) and sums them into absolute times. All
// trains are truncated to the earliest final time any process reached, so
// every process is observed over the same window, then merged into one
// time-ordered events.Stream.
//
// Randomness comes from an injectable Source; NewSource gives a seeded,
// reproducible one backed by gonum's distuv.
//
// Example Usage:
//
//	stream, err := generator.Poisson(generator.NewSource(42), 100, 1000)
package generator
