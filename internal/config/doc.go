// Package config provides 12-factor configuration for pointproc runs.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables.
//
// Configuration Sections:
//   - Generator: seed, process count, events per train, rate, horizon padding
//   - Analysis: Fano window width and the tolerance around 1
//   - Logging: Log level and output format
//   - Output: report encoding (json, yaml, toml)
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("%d processes x %d events\n", cfg.Generator.Processes, cfg.Generator.EventsPerTrain)
//
// Environment Variables:
//   - POINTPROC_SEED, POINTPROC_PROCESSES, POINTPROC_EVENTS, POINTPROC_RATE, POINTPROC_PADDING
//   - POINTPROC_WINDOW, POINTPROC_TOLERANCE, POINTPROC_FORMAT
//   - LOG_LEVEL, LOG_DEV
package config
