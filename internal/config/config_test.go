package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/pointproc/internal/events"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Generator config
	assert.Equal(t, uint64(1), cfg.Generator.Seed)
	assert.Equal(t, 100, cfg.Generator.Processes)
	assert.Equal(t, 1000, cfg.Generator.EventsPerTrain)
	assert.Equal(t, 1.0, cfg.Generator.Rate)
	assert.Equal(t, 0.001, cfg.Generator.HorizonPadding)

	// Analysis config
	assert.Equal(t, 0.01, cfg.Analysis.Window)
	assert.Equal(t, 0.15, cfg.Analysis.Tolerance)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMatchesDefault(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"POINTPROC_SEED":      "42",
		"POINTPROC_PROCESSES": "10",
		"POINTPROC_EVENTS":    "100",
		"POINTPROC_RATE":      "2.5",
		"POINTPROC_PADDING":   "0.01",
		"POINTPROC_WINDOW":    "0.5",
		"POINTPROC_TOLERANCE": "0.3",
		"POINTPROC_FORMAT":    "yaml",
		"LOG_LEVEL":           "debug",
		"LOG_DEV":             "true",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Generator.Seed)
	assert.Equal(t, 10, cfg.Generator.Processes)
	assert.Equal(t, 100, cfg.Generator.EventsPerTrain)
	assert.Equal(t, 2.5, cfg.Generator.Rate)
	assert.Equal(t, 0.01, cfg.Generator.HorizonPadding)
	assert.Equal(t, 0.5, cfg.Analysis.Window)
	assert.Equal(t, 0.3, cfg.Analysis.Tolerance)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("unparseable", func(t *testing.T) {
		t.Setenv("POINTPROC_PROCESSES", "many")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive window", func(t *testing.T) {
		t.Setenv("POINTPROC_WINDOW", "0")
		_, err := Load()
		assert.ErrorIs(t, err, events.ErrInvalidArgument)
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Setenv("POINTPROC_EVENTS", "-5")
		cfg := LoadOrDefault()
		assert.Equal(t, 1000, cfg.Generator.EventsPerTrain)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"processes": func(c *Config) { c.Generator.Processes = 0 },
		"events":    func(c *Config) { c.Generator.EventsPerTrain = 0 },
		"rate":      func(c *Config) { c.Generator.Rate = -1 },
		"padding":   func(c *Config) { c.Generator.HorizonPadding = 0 },
		"window":    func(c *Config) { c.Analysis.Window = 0 },
		"tolerance": func(c *Config) { c.Analysis.Tolerance = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), events.ErrInvalidArgument)
		})
	}
}
