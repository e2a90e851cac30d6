package logger

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// NewLogger creates a new klogr-backed logger and returns it together with a
// context carrying it.
func NewLogger(ctx context.Context) (logr.Logger, context.Context) {
	log := klog.NewKlogr()
	return log, NewContext(ctx, log)
}

// NewContext returns a copy of ctx carrying log.
func NewContext(ctx context.Context, log logr.Logger) context.Context {
	return context.WithValue(ctx, logr.Logger{}, log)
}

// WithMethod returns a new Logger with method and traceID values,
// and a function to log method completion.
func WithMethod(log logr.Logger, method string) (logger logr.Logger, completionFunc func()) {
	traceID := uuid.New().String()

	logger = log.WithValues("method", method, "traceID", traceID)
	completionFunc = func() {
		logger.V(4).Info("Method completed")
	}
	return
}

// GetLogger retrieves the Logger from the context, or creates a new one if not present.
func GetLogger(ctx context.Context) (logr.Logger, context.Context) {
	if logger, ok := ctx.Value(logr.Logger{}).(logr.Logger); ok {
		return logger, ctx
	}
	return NewLogger(ctx)
}
