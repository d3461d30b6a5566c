// internal/applog/applog.go
package applog

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing human-readable lines to w (normally stderr).
// Timestamps are omitted so repeated runs over the same inputs produce
// byte-identical diagnostics; verbose lowers the level to Debug.
func New(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
