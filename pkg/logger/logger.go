package logger

import (
	"context"

	"go.uber.org/zap"

	"aaru/pkg/trace"
)

// New builds the production zap logger the whole service shares.
func New() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}

// WithTrace returns a child logger carrying the request's trace id, when
// the context has one.
func WithTrace(ctx context.Context, l *zap.Logger) *zap.Logger {
	if traceID := trace.FromContext(ctx); traceID != "" {
		return l.With(zap.String("trace_id", traceID))
	}
	return l
}
