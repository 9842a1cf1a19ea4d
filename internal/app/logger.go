package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a production zap logger. Output goes to stderr unless
// toFile is set, in which case it goes to cfg.LogFile(). verbose forces debug.
func NewLogger(cfg *Config, verbose, toFile bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()

	level := zapcore.InfoLevel
	if cfg.Logging.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
			return nil, fmt.Errorf("%w: logging level %q", ErrInvalidConfig, cfg.Logging.Level)
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if toFile {
		zc.OutputPaths = []string{cfg.LogFile()}
		zc.ErrorOutputPaths = []string{cfg.LogFile()}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
