// Package telemetry builds the structured logger shared by the front end.
package telemetry

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.SugaredLogger tagged with a per-invocation correlation
// id, so diagnostics from one run of a recursive multi-file scan can be
// grouped together in aggregated log output.
type Logger struct {
	*zap.SugaredLogger
}

// New builds a Logger writing to stderr. verbose lowers the level to debug;
// otherwise diagnostics below info are suppressed.
func New(verbose bool) *Logger {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(zapcore.AddSync(os.Stderr)), level)
	base := zap.New(core)

	runID := uuid.New().String()
	return &Logger{SugaredLogger: base.Sugar().With("run_id", runID)}
}

// Sync flushes any buffered log entries. Errors from syncing a terminal
// file descriptor are expected and ignored, matching zap's own guidance.
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}
