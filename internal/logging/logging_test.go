package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/joshuapare/dictkit/pkg/types"
)

// Test_ZapLevel verifies the verbosity thresholds map onto sensible zap
// levels.
func Test_ZapLevel(t *testing.T) {
	tests := []struct {
		v    types.Verbosity
		want zapcore.Level
	}{
		{types.VerbosityAll, zapcore.DebugLevel},
		{types.VerbosityDebug, zapcore.DebugLevel},
		{types.VerbosityStatus, zapcore.InfoLevel},
		{types.VerbosityInfo, zapcore.InfoLevel},
		{types.VerbosityWarning, zapcore.WarnLevel},
		{types.VerbosityError, zapcore.ErrorLevel},
		{types.VerbosityFatal, zapcore.FatalLevel},
		{types.VerbosityQuiet, zapcore.FatalLevel},
	}
	for _, tt := range tests {
		if got := ZapLevel(tt.v); got != tt.want {
			t.Errorf("ZapLevel(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

// Test_New verifies construction at both configurations.
func Test_New(t *testing.T) {
	for _, cfg := range []Config{
		{Verbosity: types.VerbosityDebug, Development: true},
		DefaultConfig(),
	} {
		logger, err := New(cfg)
		if err != nil {
			t.Fatalf("New(%+v) failed: %v", cfg, err)
		}
		_ = logger.Sync()
	}

	if NewDefault() == nil {
		t.Error("NewDefault should never return nil")
	}
}
