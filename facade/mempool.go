// File: facade/mempool.go
// Unified facade layer for hioload-mempool.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Resolves the calling OS thread's recycling pool, creating it lazily,
// and forwards Acquire/Release/Borrow to it. The registry is a
// lock-free concurrent map keyed by thread id; each entry pairs a pool
// with a mutex that is uncontended for pinned goroutines.

package facade

import (
	"fmt"
	"log"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/momentics/hioload-mempool/api"
	"github.com/momentics/hioload-mempool/internal/concurrency"
	"github.com/momentics/hioload-mempool/pool"
)

// shell pairs a per-thread pool with a mutex. The mutex is insurance
// against a goroutine migrating between thread-id resolution and the
// pool mutation; a pinned goroutine never contends on it.
type shell struct {
	mu sync.Mutex
	p  *pool.Pool
}

var (
	cfgMu sync.RWMutex
	cfg   = DefaultConfig()

	pools = xsync.NewMapOf[int64, *shell]()
)

// Configure replaces the configuration used for pools created from now
// on. A nil cfg restores defaults.
func Configure(c *Config) {
	cfgMu.Lock()
	if c == nil {
		cfg = DefaultConfig()
	} else {
		cp := *c
		cfg = &cp
	}
	cfgMu.Unlock()
}

// Pin wires the calling goroutine to its OS thread so that thread's
// pool is exclusively its own. Returns the matching unpin func.
func Pin() (unpin func()) {
	return concurrency.Pin()
}

func currentShell() *shell {
	tid := concurrency.ThreadID()
	s, _ := pools.LoadOrCompute(tid, func() *shell {
		cfgMu.RLock()
		c := cfg
		cfgMu.RUnlock()
		opts := []pool.Option{
			pool.WithName(fmt.Sprintf("thread-%d", tid)),
			pool.WithInitialCapacity(c.InitialCapacity),
			pool.WithTrail(c.TrailSize),
		}
		if c.Verbose {
			log.Printf("[mempool] pool created for thread %d", tid)
		}
		return &shell{p: pool.New(opts...)}
	})
	return s
}

// Acquire returns a pooled-or-empty T from the calling thread's pool:
// logical length zero, capacity whatever the reused buffer provides in
// T's element units.
func Acquire[T any, P api.Ref[T]]() T {
	s := currentShell()
	s.mu.Lock()
	v := pool.Acquire[T, P](s.p)
	s.mu.Unlock()
	return v
}

// Release donates v's buffer to the calling thread's pool. v must not
// be used afterwards; its storage has moved on.
func Release[T any, P api.Ref[T]](v T) {
	s := currentShell()
	s.mu.Lock()
	pool.Release[T, P](s.p, v)
	s.mu.Unlock()
}

// Borrow acquires a T from the calling thread's pool, hands it to fn
// and releases it when fn is done, returning fn's result. The pool is
// locked only around the acquire and the release, never across fn, so
// fn may call Acquire, Release or Borrow itself. The release runs on
// every exit path, including a panicking fn.
func Borrow[T any, P api.Ref[T], R any](fn func(P) R) R {
	v := Acquire[T, P]()
	defer func() {
		Release[T, P](v)
	}()
	return fn(P(&v))
}

// Detach drains and removes the calling thread's pool, dropping every
// parked buffer. Workers that own an OS thread call it before exiting;
// the next facade use from that thread starts a fresh pool. Returns
// the number of descriptors dropped.
func Detach() int {
	tid := concurrency.ThreadID()
	s, ok := pools.LoadAndDelete(tid)
	if !ok {
		return 0
	}
	s.mu.Lock()
	n := s.p.Drain()
	s.mu.Unlock()
	cfgMu.RLock()
	verbose := cfg.Verbose
	cfgMu.RUnlock()
	if verbose {
		log.Printf("[mempool] pool for thread %d detached, %d buffers dropped", tid, n)
	}
	return n
}

// Reset drops every per-thread pool. Intended for tests and process
// shutdown paths.
func Reset() {
	pools.Range(func(tid int64, s *shell) bool {
		s.mu.Lock()
		s.p.Drain()
		s.mu.Unlock()
		pools.Delete(tid)
		return true
	})
}

// Snapshot reports per-thread pool statistics keyed by thread id.
func Snapshot() map[int64]api.PoolStats {
	out := make(map[int64]api.PoolStats)
	pools.Range(func(tid int64, s *shell) bool {
		s.mu.Lock()
		out[tid] = s.p.Stats()
		s.mu.Unlock()
		return true
	})
	return out
}
