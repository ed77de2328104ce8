// File: api/poolable.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The Poolable capability: any growable container backed by one
// contiguous heap allocation can donate that allocation to a pool and
// be rebuilt over a previously donated one.

package api

// Poolable is implemented by growable containers whose storage is a
// single contiguous heap allocation. It is the contract that lets
// heterogeneous container types share raw buffers through a pool.
//
// Implementations live on pointer receivers. The canonical empty
// instance is the Go zero value; producing it never allocates.
type Poolable interface {
	// ExtractBuffer surrenders the container's backing allocation as a
	// type-erased descriptor. Live elements are truncated away first, so
	// the descriptor always leaves with logical length zero. The
	// container is left empty and no longer owns the allocation; extract
	// at most once per live buffer.
	ExtractBuffer() Buf

	// AdoptBuffer rebuilds the container over buf with logical length
	// zero, taking ownership of the allocation. buf.Cap must equal the
	// allocation's true byte size and the layout must be compatible with
	// the container's element type; a violation is undefined behavior
	// (double ownership, corruption), not a reported error.
	AdoptBuffer(buf Buf)
}

// Ref constrains a pointer to a poolable container value, letting
// generic pool operations construct a T by value and reach its
// capability methods through *T.
type Ref[T any] interface {
	*T
	Poolable
}
