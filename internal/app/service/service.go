package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	resultSuccess    = "success"
	resultFailure    = "failure"
	resultNotFound   = "not_found"
	resultRejected   = "rejected"
	resultNoop       = "noop"
	resultInvalidArg = "invalid_argument"
)

// recordOperation counts one use case execution by operation and result
func recordOperation(ctx context.Context, counter metric.Int64Counter, operation, result string) {
	counter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", result),
		),
	)
}
