// File: mem/bytes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import (
	"unsafe"

	"github.com/momentics/hioload-mempool/api"
)

// Bytes is a growable byte string over a single contiguous allocation.
// The zero value is an empty string that owns no buffer.
type Bytes struct {
	buf []byte
}

// Len reports the logical length in bytes.
func (b *Bytes) Len() int { return len(b.buf) }

// Cap reports the capacity of the backing allocation in bytes.
func (b *Bytes) Cap() int { return cap(b.buf) }

// Bytes returns the live contents. The slice aliases the container's
// storage and is invalidated by any mutation.
func (b *Bytes) Bytes() []byte { return b.buf }

// String returns a copy of the contents as a string.
func (b *Bytes) String() string { return string(b.buf) }

// Append adds p to the end, growing as needed.
func (b *Bytes) Append(p []byte) { b.buf = append(b.buf, p...) }

// AppendByte adds a single byte to the end.
func (b *Bytes) AppendByte(c byte) { b.buf = append(b.buf, c) }

// AppendString adds s to the end, growing as needed.
func (b *Bytes) AppendString(s string) { b.buf = append(b.buf, s...) }

// Write implements io.Writer. It never fails.
func (b *Bytes) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString implements io.StringWriter. It never fails.
func (b *Bytes) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// Reset clears the contents but retains capacity.
func (b *Bytes) Reset() { b.buf = b.buf[:0] }

// Grow ensures room for at least n more bytes without reallocation on
// subsequent appends.
func (b *Bytes) Grow(n int) {
	if cap(b.buf)-len(b.buf) >= n {
		return
	}
	next := make([]byte, len(b.buf), len(b.buf)+n)
	copy(next, b.buf)
	b.buf = next
}

// Clip reallocates to exactly the current length, releasing spare
// capacity. Clipping an empty container drops its buffer entirely.
func (b *Bytes) Clip() {
	if len(b.buf) == cap(b.buf) {
		return
	}
	if len(b.buf) == 0 {
		b.buf = nil
		return
	}
	next := make([]byte, len(b.buf))
	copy(next, b.buf)
	b.buf = next
}

// ExtractBuffer surrenders the backing allocation. Live bytes are
// truncated away: the descriptor leaves with logical length zero.
func (b *Bytes) ExtractBuffer() api.Buf {
	c := cap(b.buf)
	if c == 0 {
		b.buf = nil
		return api.Buf{}
	}
	p := unsafe.Pointer(unsafe.SliceData(b.buf[:c]))
	b.buf = nil
	return api.Buf{Ptr: p, Cap: c}
}

// AdoptBuffer rebuilds the string over buf with length zero.
func (b *Bytes) AdoptBuffer(buf api.Buf) {
	if buf.Zero() {
		b.buf = nil
		return
	}
	b.buf = unsafe.Slice((*byte)(buf.Ptr), buf.Cap)[:0]
}

var _ api.Poolable = (*Bytes)(nil)
