package config

import (
	"fmt"
	gomath "math"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/pointproc/internal/events"
)

// Config holds all run configuration.
type Config struct {
	Generator GeneratorConfig
	Analysis  AnalysisConfig
	Logging   LogConfig
	Output    OutputConfig
}

// GeneratorConfig controls the synthetic Poisson streams.
type GeneratorConfig struct {
	Seed           uint64  `envconfig:"POINTPROC_SEED" default:"1"`
	Processes      int     `envconfig:"POINTPROC_PROCESSES" default:"100"`
	EventsPerTrain int     `envconfig:"POINTPROC_EVENTS" default:"1000"`
	Rate           float64 `envconfig:"POINTPROC_RATE" default:"1"`
	HorizonPadding float64 `envconfig:"POINTPROC_PADDING" default:"0.001"`
}

// AnalysisConfig controls the irregularity measures.
type AnalysisConfig struct {
	Window    float64 `envconfig:"POINTPROC_WINDOW" default:"0.01"`
	Tolerance float64 `envconfig:"POINTPROC_TOLERANCE" default:"0.15"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// OutputConfig selects the report encoding.
type OutputConfig struct {
	Format string `envconfig:"POINTPROC_FORMAT" default:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Seed:           1,
			Processes:      100,
			EventsPerTrain: 1000,
			Rate:           1,
			HorizonPadding: 0.001,
		},
		Analysis: AnalysisConfig{
			Window:    0.01,
			Tolerance: 0.15,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}

// Validate rejects values no run can use.
func (c *Config) Validate() error {
	switch {
	case c.Generator.Processes < 1:
		return fmt.Errorf("processes must be positive, got %d: %w", c.Generator.Processes, events.ErrInvalidArgument)
	case c.Generator.EventsPerTrain < 1:
		return fmt.Errorf("events per train must be positive, got %d: %w", c.Generator.EventsPerTrain, events.ErrInvalidArgument)
	case !positive(c.Generator.Rate):
		return fmt.Errorf("rate must be positive, got %v: %w", c.Generator.Rate, events.ErrInvalidArgument)
	case !positive(c.Generator.HorizonPadding):
		return fmt.Errorf("horizon padding must be positive, got %v: %w", c.Generator.HorizonPadding, events.ErrInvalidArgument)
	case !positive(c.Analysis.Window):
		return fmt.Errorf("window must be positive, got %v: %w", c.Analysis.Window, events.ErrInvalidArgument)
	case !positive(c.Analysis.Tolerance):
		return fmt.Errorf("tolerance must be positive, got %v: %w", c.Analysis.Tolerance, events.ErrInvalidArgument)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !gomath.IsInf(v, 0)
}
