package pool_test

import (
	"testing"

	"github.com/momentics/hioload-mempool/mem"
	"github.com/momentics/hioload-mempool/pool"
)

func BenchmarkBorrowBytes(b *testing.B) {
	p := pool.New(pool.WithInitialCapacity(1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pool.Borrow(p, func(s *mem.Bytes) int {
			s.AppendString("0123456789abcdef")
			return s.Len()
		})
	}
}

func BenchmarkAcquireRelease(b *testing.B) {
	p := pool.New(pool.WithInitialCapacity(1))
	var warm mem.Bytes
	warm.Grow(1 << 10)
	pool.Release(p, warm)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := pool.Acquire[mem.Bytes](p)
		v.AppendString("payload")
		pool.Release(p, v)
	}
}

func BenchmarkBorrowSliceUint64(b *testing.B) {
	p := pool.New(pool.WithInitialCapacity(1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pool.Borrow(p, func(v *mem.Slice[uint64]) int {
			for j := 0; j < 64; j++ {
				v.Append(uint64(j))
			}
			return v.Len()
		})
	}
}
