package bignum

import (
	"context"
	"sync/atomic"

	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/tracing"
)

// loggerBox is a fixed concrete type so atomic.Value can hold any
// logging.Logger implementation across Store calls (atomic.Value
// panics if successive Store calls use different concrete types).
type loggerBox struct{ l logging.Logger }

var loggerVal atomic.Value // holds loggerBox

func init() { loggerVal.Store(loggerBox{logging.Nop()}) }

// SetLogger redirects the kernel's diagnostic logging (algorithm
// dispatch decisions, parse/divide error context) into l. Passing nil
// restores the default no-op logger. This is process-wide state, akin
// to setting a package-level default logger in any structured-logging
// library; it does not affect the correctness or determinism of any
// arithmetic operation (spec.md §4.9).
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.Nop()
	}
	loggerVal.Store(loggerBox{l})
}

func currentLogger() logging.Logger { return loggerVal.Load().(loggerBox).l }

// recordMul logs and records metrics for a single Mul dispatch
// decision without altering the arithmetic result.
func recordMul(algorithm string, limbsA, limbsB int) {
	currentLogger().Debug("bignum: multiply",
		logging.String("algorithm", algorithm),
		logging.Int("limbs_a", limbsA),
		logging.Int("limbs_b", limbsB),
	)
	metrics.OperationsTotal.WithLabelValues("mul", algorithm).Inc()
	n := limbsA
	if limbsB > n {
		n = limbsB
	}
	metrics.OperandLimbs.Observe(float64(n))
}

// recordDiv logs and records metrics for a division.
func recordDiv(limbsA, limbsB int) {
	currentLogger().Debug("bignum: divmod",
		logging.Int("limbs_a", limbsA),
		logging.Int("limbs_b", limbsB),
	)
	metrics.OperationsTotal.WithLabelValues("divmod", "long").Inc()
	n := limbsA
	if limbsB > n {
		n = limbsB
	}
	metrics.OperandLimbs.Observe(float64(n))
}

// MulContext behaves like Mul but wraps the call in an OpenTelemetry
// span (internal/tracing) so a caller with an active tracer can see
// where large-multiplication time goes. The plain, context-free Mul
// remains the primary, allocation-light entry point.
func (x Integer) MulContext(ctx context.Context, y Integer) Integer {
	_, end := tracing.StartSpan(ctx, "bignum.Mul", len(x.limbs), len(y.limbs))
	defer end()
	return x.Mul(y)
}

// DivModContext behaves like DivMod but wraps the call in an
// OpenTelemetry span.
func (a Integer) DivModContext(ctx context.Context, b Integer) (q, r Integer, err error) {
	_, end := tracing.StartSpan(ctx, "bignum.DivMod", len(a.limbs), len(b.limbs))
	defer end()
	return a.DivMod(b)
}
