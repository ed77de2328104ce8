// Package pool implements a single-owner recycling pool of raw heap
// buffers for latency-sensitive paths that need short-lived growable
// containers without churning the allocator.
//
// A Pool keeps type-erased descriptors on a LIFO free list: the most
// recently released buffer is the warmest and goes out first. Acquire,
// Release and Borrow are generic over any api.Poolable container, so a
// buffer released by a byte string can resurface as a typed array with
// its capacity re-expressed in element units.
//
// A Pool has exactly one owner and performs no locking. Hold one per
// goroutine, or use the facade package for per-thread resolution.
// See pool.go, trail.go for implementation details.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package pool
