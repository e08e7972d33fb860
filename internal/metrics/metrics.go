// Package metrics exposes Prometheus collectors for the operations the
// bignum kernel performs. Adapted from the teacher's
// internal/metrics/memory.go (a small runtime-stats collector struct)
// but generalized to arithmetic operation counters, since that is the
// metric this module actually produces; the kernel never registers
// these against a default registry or starts a server (spec.md §6: no
// wire protocol).
package metrics

import "github.com/prometheus/client_golang/prometheus"

// OperationsTotal counts completed arithmetic operations by name and
// by the algorithm used (e.g. "mul"/"schoolbook" vs "mul"/"fft").
var OperationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bignum_operations_total",
		Help: "Total number of Integer operations performed, by operation and algorithm.",
	},
	[]string{"operation", "algorithm"},
)

// OperandLimbs observes the operand size, in limbs, passed to
// multiplication and division so callers can watch for the FFT
// crossover threshold being hit in practice.
var OperandLimbs = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "bignum_operand_limbs",
		Help:    "Distribution of operand magnitude length, in limbs, for multiplication and division.",
		Buckets: prometheus.ExponentialBuckets(8, 4, 12),
	},
)

// Collectors returns every collector this package defines, for
// callers that want to register them against their own
// prometheus.Registerer.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{OperationsTotal, OperandLimbs}
}
