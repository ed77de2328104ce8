// File: api/buf.go
// Package api defines the capability contracts for hioload-mempool.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A pool stores nothing but Buf descriptors: type-erased (pointer, byte
// capacity) pairs. Keeping descriptors untyped is what lets a byte
// string's allocation become a typed array's allocation on the next
// acquire.

package api

import "unsafe"

// Buf describes one reusable heap allocation: a raw pointer plus the
// allocation's capacity in bytes. A descriptor carries zero live
// contents; whoever holds it owns the allocation. The zero value means
// "no buffer".
//
// The pointer is visible to the garbage collector, so a descriptor
// parked in a free list keeps its allocation reachable until it is
// either adopted by a container or dropped.
type Buf struct {
	Ptr unsafe.Pointer
	Cap int
}

// Zero reports whether the descriptor carries no allocation.
// Zero-capacity buffers are never pooled: there is nothing to reuse.
func (b Buf) Zero() bool {
	return b.Ptr == nil || b.Cap == 0
}
