// Package tracing wraps the kernel's expensive operations (FFT
// multiplication, long division) in OpenTelemetry spans, so a host
// application that already has a tracer configured gets visibility
// into where time goes on large operands. The teacher depends on
// go.opentelemetry.io/otel but only wires it into TUI/orchestration
// code that this module does not carry forward; this package gives
// the dependency a home scoped to the arithmetic kernel instead.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/agbru/bignum")

// StartSpan starts a span named name carrying the given limb-count
// attributes, returning the derived context and an End func the
// caller must invoke (typically via defer) when the operation
// completes.
func StartSpan(ctx context.Context, name string, limbsA, limbsB int) (context.Context, func()) {
	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(
		attribute.Int("bignum.operand_a_limbs", limbsA),
		attribute.Int("bignum.operand_b_limbs", limbsB),
	))
	return ctx, func() { span.End() }
}
