// Package logging builds the zap loggers used by kernel consumers and the
// CLI, and maps the kernel verbosity levels stored in status dictionaries
// onto zap levels.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/joshuapare/dictkit/pkg/types"
)

// Config defines logger configuration.
type Config struct {
	Verbosity   types.Verbosity
	Development bool
}

// DefaultConfig returns the production configuration at M_INFO.
func DefaultConfig() Config {
	return Config{Verbosity: types.VerbosityInfo}
}

// New creates a logger honoring the given verbosity threshold.
func New(cfg Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(ZapLevel(cfg.Verbosity))
	return zapCfg.Build()
}

// NewDefault creates a logger with default configuration, falling back to a
// no-op logger on construction failure.
func NewDefault() *zap.Logger {
	logger, err := New(DefaultConfig())
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// ZapLevel maps a kernel verbosity threshold onto the closest zap level.
// Levels below M_INFO enable debug output; M_QUIET suppresses everything
// short of a fatal.
func ZapLevel(v types.Verbosity) zapcore.Level {
	switch {
	case v <= types.VerbosityDebug:
		return zapcore.DebugLevel
	case v <= types.VerbosityInfo:
		return zapcore.InfoLevel
	case v <= types.VerbosityWarning:
		return zapcore.WarnLevel
	case v <= types.VerbosityError:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}
