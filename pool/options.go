// File: pool/options.go
// Package pool defines functional options for pool construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/hioload-mempool/api"

// Option customizes pool initialization.
type Option func(*Pool)

// WithInitialCapacity preallocates room for n descriptors on the free
// list, keeping the first n releases off the allocator.
func WithInitialCapacity(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.free = make([]api.Buf, 0, n)
		}
	}
}

// WithTrail keeps a bounded trail of the last n pool events, exposed
// through DumpState. n <= 0 leaves the trail disabled.
func WithTrail(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.trail = newTrail(n)
		}
	}
}

// WithName labels the pool in diagnostics.
func WithName(name string) Option {
	return func(p *Pool) { p.name = name }
}
