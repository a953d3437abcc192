package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the zap logger shared by the generator, pipeline and CLI.
type Logger struct {
	*zap.Logger
}

// Config selects level and encoding. Output goes to OutputPaths, stderr
// when empty, so reports written to stdout stay parseable.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Development bool
	OutputPaths []string
}

// DefaultConfig is JSON at info level.
func DefaultConfig() Config {
	return Config{Level: "info", OutputPaths: []string{"stderr"}}
}

// DevelopmentConfig is colored console output at debug level.
func DevelopmentConfig() Config {
	return Config{Level: "debug", Development: true, OutputPaths: []string{"stderr"}}
}

// New builds a logger from cfg.
func New(cfg Config) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}

	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.EncoderConfig = encoderConfig(cfg.Development)
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = outputs
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	// Runs are short; sampling would drop per-measure debug lines.
	zapCfg.Sampling = nil

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: logger}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Named returns a child logger scoped to a component.
func (l *Logger) Named(component string) *Logger {
	return &Logger{Logger: l.Logger.Named(component)}
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return enc
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.MessageKey = "message"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return enc
}
