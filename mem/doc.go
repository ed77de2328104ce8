// Package mem provides the built-in poolable containers: Bytes, a
// growable byte string, and Slice[T], a growable typed array. Both are
// backed by one contiguous heap allocation and implement api.Poolable,
// so either can adopt a buffer the other released.
//
// Designed for single-goroutine use; no locks for minimal overhead.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package mem
