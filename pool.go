package bignum

import (
	"math/bits"
	"sync"
)

// complexPools holds one sync.Pool per power-of-two size class,
// mirroring the teacher's size-classed sync.Pool scheme in
// internal/bigfft/pool.go (there keyed to []big.Word, here to the
// []complex128 coefficient buffers the FFT multiplier needs). Pooling
// keeps repeated large multiplications from re-allocating megabytes of
// complex buffers on every call.
var complexPools sync.Map // map[int]*sync.Pool, key = buffer length

// acquireComplexBuf returns a zeroed []complex128 of exactly n
// elements, reused from a size-classed pool when possible.
func acquireComplexBuf(n int) []complex128 {
	poolAny, _ := complexPools.LoadOrStore(n, &sync.Pool{
		New: func() any { return make([]complex128, n) },
	})
	pool := poolAny.(*sync.Pool)
	buf := pool.Get().([]complex128)
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// releaseComplexBuf returns buf to its size-classed pool.
func releaseComplexBuf(buf []complex128) {
	if buf == nil {
		return
	}
	poolAny, ok := complexPools.Load(len(buf))
	if !ok {
		return
	}
	poolAny.(*sync.Pool).Put(buf) //nolint:staticcheck // slice header copy is intentional
}

// nextPow2 returns the smallest power of two >= n (n > 0).
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
