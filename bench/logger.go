package bench

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with the fields the harness reports.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable lines to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger writing JSON lines to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// WithCase tags every record with a case name.
func (l *Logger) WithCase(name string) *Logger {
	return &Logger{Logger: l.Logger.With("case", name)}
}

// LogMeasure logs one timed call.
func (l *Logger) LogMeasure(ctx context.Context, algorithm string, index int, elapsed time.Duration) {
	l.DebugContext(ctx, "measure completed",
		"algorithm", algorithm,
		"index", index,
		"elapsed", elapsed,
	)
}

// LogCase logs the outcome of all algorithms on one case.
func (l *Logger) LogCase(ctx context.Context, index int, agree bool) {
	if !agree {
		l.WarnContext(ctx, "algorithms disagree", "index", index)

		return
	}
	l.InfoContext(ctx, "case completed", "index", index)
}

// LogRun logs the end of a run.
func (l *Logger) LogRun(ctx context.Context, cases, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"cases", cases,
			"rows", rows,
			"error", err,
		)

		return
	}
	l.InfoContext(ctx, "run completed",
		"cases", cases,
		"rows", rows,
	)
}
