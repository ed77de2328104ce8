// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/hioload-mempool/api"

// Pool is a free list of type-erased buffer descriptors with LIFO
// hand-out order. The zero value is usable; New applies options.
type Pool struct {
	free  []api.Buf
	name  string
	trail *trail
	stats api.PoolStats
}

// New constructs an empty pool with the given options.
func New(opts ...Option) *Pool {
	p := &Pool{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Acquire pops the most recently released descriptor from p and
// rebuilds a T over it; an empty free list yields the zero value of T
// (length 0, capacity 0). Descriptors carry no type tag: a buffer
// released by a different container type is reused at the byte level,
// with capacity re-expressed in T's element units.
func Acquire[T any, P api.Ref[T]](p *Pool) T {
	var v T
	p.stats.Acquires++
	n := len(p.free)
	if n == 0 {
		p.record(evAcquire, 0)
		return v
	}
	buf := p.free[n-1]
	p.free[n-1] = api.Buf{} // do not pin the allocation through the stack
	p.free = p.free[:n-1]
	p.stats.Reuses++
	p.stats.Resident--
	p.stats.ResidentBytes -= int64(buf.Cap)
	p.record(evAcquire, buf.Cap)
	P(&v).AdoptBuffer(buf)
	return v
}

// Release extracts v's backing allocation and parks it on the free
// list. Zero-capacity buffers are discarded: there is nothing to reuse.
// v must not be used after Release; its storage has been donated.
func Release[T any, P api.Ref[T]](p *Pool, v T) {
	buf := P(&v).ExtractBuffer()
	if buf.Zero() {
		p.stats.Discards++
		p.record(evDiscard, 0)
		return
	}
	p.free = append(p.free, buf)
	p.stats.Releases++
	p.stats.Resident++
	p.stats.ResidentBytes += int64(buf.Cap)
	p.record(evRelease, buf.Cap)
}

// Borrow acquires a T, hands it to fn and releases it back to p once fn
// is done, returning fn's result. The release runs on every exit path:
// a panicking callback still donates the buffer back. fn may itself
// call pool operations on p; it then observes the temporarily shrunk
// free list.
func Borrow[T any, P api.Ref[T], R any](p *Pool, fn func(P) R) R {
	v := Acquire[T, P](p)
	defer func() {
		Release[T, P](p, v)
	}()
	return fn(P(&v))
}

// Stats returns a copy of p's counters.
func (p *Pool) Stats() api.PoolStats { return p.stats }

// Resident reports the number of descriptors currently parked in p.
func (p *Pool) Resident() int { return len(p.free) }

// Name returns the diagnostic label set via WithName.
func (p *Pool) Name() string { return p.name }

// Drain drops every descriptor on the free list and reports how many
// were dropped. The allocations become unreachable and the collector
// reclaims them; nothing needs destruction since parked buffers hold
// zero live elements. The pool stays usable afterwards.
func (p *Pool) Drain() int {
	n := len(p.free)
	for i := range p.free {
		p.free[i] = api.Buf{}
	}
	p.free = p.free[:0]
	p.stats.Resident = 0
	p.stats.ResidentBytes = 0
	if n > 0 {
		p.record(evDrain, 0)
	}
	return n
}

// DumpState emits a diagnostic snapshot: label, counters and, when the
// trail is enabled, the most recent pool events.
func (p *Pool) DumpState() map[string]any {
	state := map[string]any{
		"name":  p.name,
		"stats": p.stats,
	}
	if p.trail != nil {
		state["trail"] = p.trail.events()
	}
	return state
}

func (p *Pool) record(kind string, capBytes int) {
	if p.trail != nil {
		p.trail.record(kind, capBytes)
	}
}

var _ api.Drainer = (*Pool)(nil)
