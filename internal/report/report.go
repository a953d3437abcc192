package report

import (
	gomath "math"
	"time"

	"github.com/google/uuid"

	"github.com/GriffinCanCode/pointproc/internal/analysis"
	"github.com/GriffinCanCode/pointproc/internal/events"
)

// Report is the outcome of one generate-and-measure run.
type Report struct {
	RunID      string             `json:"run_id" yaml:"run_id" toml:"run_id"`
	CreatedAt  time.Time          `json:"created_at" yaml:"created_at" toml:"created_at"`
	Parameters Parameters         `json:"parameters" yaml:"parameters" toml:"parameters"`
	Stream     StreamInfo         `json:"stream" yaml:"stream" toml:"stream"`
	Measures   map[string]Measure `json:"measures" yaml:"measures" toml:"measures"`
	Pass       bool               `json:"pass" yaml:"pass" toml:"pass"`
}

// Parameters records the analysis settings and, when known, what produced
// the stream.
type Parameters struct {
	Generator *GeneratorParams `json:"generator,omitempty" yaml:"generator,omitempty" toml:"generator,omitempty"`
	Window    float64          `json:"window" yaml:"window" toml:"window"`
	Tolerance float64          `json:"tolerance" yaml:"tolerance" toml:"tolerance"`
}

// GeneratorParams are the settings a stream was drawn with.
type GeneratorParams struct {
	Seed           uint64  `json:"seed" yaml:"seed" toml:"seed"`
	Processes      int     `json:"processes" yaml:"processes" toml:"processes"`
	EventsPerTrain int     `json:"events_per_train" yaml:"events_per_train" toml:"events_per_train"`
	Rate           float64 `json:"rate" yaml:"rate" toml:"rate"`
	HorizonPadding float64 `json:"horizon_padding" yaml:"horizon_padding" toml:"horizon_padding"`
}

// StreamInfo describes the generated stream.
type StreamInfo struct {
	Events    int     `json:"events" yaml:"events" toml:"events"`
	Processes int     `json:"processes" yaml:"processes" toml:"processes"`
	Horizon   float64 `json:"horizon" yaml:"horizon" toml:"horizon"`
}

// Measure is an encodable analysis.Summary plus the tolerance verdict.
type Measure struct {
	Count        int      `json:"count" yaml:"count" toml:"count"`
	NaNs         int      `json:"nans" yaml:"nans" toml:"nans"`
	Mean         *float64 `json:"mean,omitempty" yaml:"mean,omitempty" toml:"mean,omitempty"`
	StdDev       *float64 `json:"stddev,omitempty" yaml:"stddev,omitempty" toml:"stddev,omitempty"`
	Min          *float64 `json:"min,omitempty" yaml:"min,omitempty" toml:"min,omitempty"`
	Max          *float64 `json:"max,omitempty" yaml:"max,omitempty" toml:"max,omitempty"`
	MaxDeviation *float64 `json:"max_deviation,omitempty" yaml:"max_deviation,omitempty" toml:"max_deviation,omitempty"`
	Pass         bool     `json:"pass" yaml:"pass" toml:"pass"`
}

// New starts a report with a fresh run id.
func New(params Parameters, s *events.Stream) *Report {
	return &Report{
		RunID:      uuid.New().String(),
		CreatedAt:  time.Now().UTC(),
		Parameters: params,
		Stream: StreamInfo{
			Events:    s.Len(),
			Processes: s.NumProcesses(),
			Horizon:   s.Horizon(),
		},
		Measures: map[string]Measure{},
		Pass:     true,
	}
}

// AddMeasure stores a summary under name; a failing measure fails the report.
func (r *Report) AddMeasure(name string, sum analysis.Summary, pass bool) {
	r.Measures[name] = Measure{
		Count:        sum.Count,
		NaNs:         sum.NaNs,
		Mean:         finite(sum.Mean),
		StdDev:       finite(sum.StdDev),
		Min:          finite(sum.Min),
		Max:          finite(sum.Max),
		MaxDeviation: finite(sum.MaxDeviation),
		Pass:         pass,
	}
	if !pass {
		r.Pass = false
	}
}

func finite(v float64) *float64 {
	if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
		return nil
	}
	return &v
}
