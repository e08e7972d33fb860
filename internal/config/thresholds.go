// Package config holds tunable performance thresholds for the bignum
// kernel: the operand length, in limbs, at or above which (for both
// operands) multiplication switches from schoolbook to FFT. Resolution mirrors the teacher's
// hardware-adaptive estimation, minus the CLI-flag layer, since this
// package has no command-line surface (spec.md §6).
package config

import (
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// Tunables holds the resolved crossover thresholds.
type Tunables struct {
	// FFTCrossoverLimbs is the operand length, in limbs, at or above
	// which (for both operands) Mul dispatches to FFT-based
	// multiplication instead of schoolbook (spec.md §4.5).
	FFTCrossoverLimbs int
}

var (
	current   atomic.Pointer[Tunables]
	initOnce  sync.Once
	envPrefix = "BIGNUM_"
)

// Thresholds returns the currently active tunables, resolving the
// hardware-adaptive defaults on first use.
func Thresholds() Tunables {
	initOnce.Do(func() {
		current.Store(defaultTunables())
	})
	return *current.Load()
}

// WithThresholds installs t as the active tunables and returns a
// restore function that puts the previous value back. Intended for
// tests and benchmarks that need to force a specific algorithm path
// (e.g. forcing FFT for small operands to check equivalence with
// schoolbook multiplication); not part of the public Integer API.
func WithThresholds(t Tunables) (restore func()) {
	initOnce.Do(func() {
		current.Store(defaultTunables())
	})
	prev := current.Load()
	current.Store(&t)
	return func() { current.Store(prev) }
}

// defaultTunables estimates the FFT crossover from the CPU count,
// matching the teacher's EstimateOptimalFFTThreshold heuristic, then
// applies the BIGNUM_FFT_CROSSOVER_LIMBS environment override when it
// holds a positive integer, so benchmark harnesses can sweep the
// crossover without recompiling. The override is read by any program
// using the package, not only by tests.
func defaultTunables() *Tunables {
	t := &Tunables{FFTCrossoverLimbs: estimateFFTCrossover()}
	if v := os.Getenv(envPrefix + "FFT_CROSSOVER_LIMBS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			t.FFTCrossoverLimbs = parsed
		}
	}
	return t
}

// estimateFFTCrossover picks a limb-count crossover proportional to
// available parallelism: machines with more cores can afford the
// higher constant factor of a parallel FFT stage (fft.go runs the two
// forward transforms concurrently) at a lower operand size.
func estimateFFTCrossover() int {
	numCPU := runtime.NumCPU()
	switch {
	case numCPU <= 1:
		return 8192
	case numCPU <= 4:
		return 4096
	case numCPU <= 8:
		return 2048
	default:
		return 1024
	}
}
