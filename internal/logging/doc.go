// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Logs go to stderr by default so that reports written to stdout stay
// machine readable.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	logger.Info("Stream generated", zap.Int("events", n))
package logging
