// File: mem/slice.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import (
	"unsafe"

	"github.com/momentics/hioload-mempool/api"
)

// Slice is a growable typed array over a single contiguous allocation.
// The zero value is empty and owns no buffer.
//
// Element types must not contain pointers: adopted storage may
// previously have held raw bytes, and the collector must never scan
// reinterpreted garbage. Element types of size zero are never pooled.
type Slice[T any] struct {
	items []T
}

// Len reports the logical length in elements.
func (s *Slice[T]) Len() int { return len(s.items) }

// Cap reports the capacity of the backing allocation in elements.
func (s *Slice[T]) Cap() int { return cap(s.items) }

// Items returns the live elements. The slice aliases the container's
// storage and is invalidated by any mutation.
func (s *Slice[T]) Items() []T { return s.items }

// Append adds vs to the end, growing as needed.
func (s *Slice[T]) Append(vs ...T) { s.items = append(s.items, vs...) }

// Reset clears the contents but retains capacity.
func (s *Slice[T]) Reset() { s.items = s.items[:0] }

// Grow ensures room for at least n more elements without reallocation
// on subsequent appends.
func (s *Slice[T]) Grow(n int) {
	if cap(s.items)-len(s.items) >= n {
		return
	}
	next := make([]T, len(s.items), len(s.items)+n)
	copy(next, s.items)
	s.items = next
}

// Clip reallocates to exactly the current length, releasing spare
// capacity. Clipping an empty container drops its buffer entirely.
func (s *Slice[T]) Clip() {
	if len(s.items) == cap(s.items) {
		return
	}
	if len(s.items) == 0 {
		s.items = nil
		return
	}
	next := make([]T, len(s.items))
	copy(next, s.items)
	s.items = next
}

// ExtractBuffer surrenders the backing allocation with its capacity
// re-expressed in bytes. Live elements are truncated away: the
// descriptor leaves with logical length zero.
func (s *Slice[T]) ExtractBuffer() api.Buf {
	var z T
	c := cap(s.items)
	es := int(unsafe.Sizeof(z))
	if c == 0 || es == 0 {
		s.items = nil
		return api.Buf{}
	}
	p := unsafe.Pointer(unsafe.SliceData(s.items[:c]))
	s.items = nil
	return api.Buf{Ptr: p, Cap: c * es}
}

// AdoptBuffer rebuilds the array over buf with length zero. Byte
// capacity converts to element capacity by floor division; trailing
// remainder bytes are unusable as whole elements. A buffer too small
// for one element, or one that does not satisfy T's alignment, is
// dropped and the container starts empty.
func (s *Slice[T]) AdoptBuffer(buf api.Buf) {
	var z T
	es := int(unsafe.Sizeof(z))
	if buf.Zero() || es == 0 {
		s.items = nil
		return
	}
	if a := uintptr(unsafe.Alignof(z)); uintptr(buf.Ptr)%a != 0 {
		s.items = nil
		return
	}
	n := buf.Cap / es
	if n == 0 {
		s.items = nil
		return
	}
	s.items = unsafe.Slice((*T)(buf.Ptr), n)[:0]
}

var _ api.Poolable = (*Slice[byte])(nil)
