package generator

import (
	"context"
	"fmt"
	gomath "math"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/GriffinCanCode/pointproc/internal/events"
	"github.com/GriffinCanCode/pointproc/internal/logging"
)

// DefaultHorizonPadding keeps the last event strictly inside [0, horizon).
const DefaultHorizonPadding = 0.001

// Generator builds merged Poisson event streams.
type Generator struct {
	src     Source
	rate    float64
	padding float64
	logger  *logging.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRate sets the event rate of every process. Default 1.
func WithRate(rate float64) Option {
	return func(g *Generator) {
		g.rate = rate
	}
}

// WithHorizonPadding sets how far past the last event the horizon lies.
func WithHorizonPadding(padding float64) Option {
	return func(g *Generator) {
		g.padding = padding
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *logging.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a generator drawing from src.
func New(src Source, opts ...Option) (*Generator, error) {
	if src == nil {
		return nil, fmt.Errorf("nil source: %w", events.ErrInvalidArgument)
	}

	g := &Generator{
		src:     src,
		rate:    1,
		padding: DefaultHorizonPadding,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if !(g.rate > 0) || gomath.IsInf(g.rate, 0) {
		return nil, fmt.Errorf("rate %v must be positive and finite: %w", g.rate, events.ErrInvalidArgument)
	}
	if !(g.padding > 0) || gomath.IsInf(g.padding, 0) {
		return nil, fmt.Errorf("horizon padding %v must be positive and finite: %w", g.padding, events.ErrInvalidArgument)
	}
	return g, nil
}

// Poisson generates a unit-rate stream with default settings.
func Poisson(src Source, numProcesses, numEventsPerProcess int) (*events.Stream, error) {
	g, err := New(src)
	if err != nil {
		return nil, err
	}
	return g.Generate(context.Background(), numProcesses, numEventsPerProcess)
}

// Trains draws the raw, untruncated event times of every process. Each train
// holds exactly numEvents strictly increasing times.
func (g *Generator) Trains(ctx context.Context, numProcesses, numEvents int) ([][]float64, error) {
	if numProcesses < 1 {
		return nil, fmt.Errorf("process count %d must be positive: %w", numProcesses, events.ErrInvalidArgument)
	}
	if numEvents < 1 {
		return nil, fmt.Errorf("events per process %d must be positive: %w", numEvents, events.ErrInvalidArgument)
	}

	trains := make([][]float64, numProcesses)
	for i := range trains {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		isi := make([]float64, numEvents)
		for k := range isi {
			isi[k] = -gomath.Log(g.src.Uniform()) / g.rate
		}
		trains[i] = floats.CumSum(make([]float64, numEvents), isi)
	}
	return trains, nil
}

// Generate draws trains, truncates them to the shortest final time and
// merges them into one stream.
func (g *Generator) Generate(ctx context.Context, numProcesses, numEvents int) (*events.Stream, error) {
	trains, err := g.Trains(ctx, numProcesses, numEvents)
	if err != nil {
		return nil, err
	}

	last := make([]float64, len(trains))
	for i, train := range trains {
		last[i] = train[len(train)-1]
	}
	minHorizon := floats.Min(last)

	merged := make([]events.Event, 0, numProcesses*numEvents)
	for id, train := range trains {
		for _, t := range train {
			if t > minHorizon {
				break
			}
			merged = append(merged, events.Event{Time: t, Process: id})
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Time < merged[j].Time
	})

	times := make([]float64, len(merged))
	ids := make([]int, len(merged))
	for i, ev := range merged {
		times[i] = ev.Time
		ids[i] = ev.Process
	}

	horizon := minHorizon + g.padding
	g.logger.Debug("Generated Poisson stream",
		zap.Int("processes", numProcesses),
		zap.Int("events_per_process", numEvents),
		zap.Int("events", len(times)),
		zap.Float64("horizon", horizon),
	)

	return events.New(times, ids, horizon, events.WithNumProcesses(numProcesses))
}
