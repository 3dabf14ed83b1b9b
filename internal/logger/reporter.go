package logger

import (
	"context"
	"log/slog"
)

// Reporter adapts a slog logger to the balancing pass reporting interface.
type Reporter struct {
	log *slog.Logger
}

// NewReporter returns a Reporter tagging every line with the given module name.
func NewReporter(ctx context.Context, module string) *Reporter {
	return &Reporter{log: FromContext(ctx).With(AttrKeyModule, module)}
}

// Info reports progress.
func (r *Reporter) Info(msg string, args ...any) { r.log.Info(msg, args...) }

// Success reports a completed step. It is an info line carrying outcome=success.
func (r *Reporter) Success(msg string, args ...any) {
	r.log.Info(msg, append([]any{AttrKeyOutcome, OutcomeSuccess}, args...)...)
}

// Warn reports a skipped record or lookup miss.
func (r *Reporter) Warn(msg string, args ...any) { r.log.Warn(msg, args...) }

// Error reports a failed sub-operation.
func (r *Reporter) Error(msg string, args ...any) { r.log.Error(msg, args...) }
