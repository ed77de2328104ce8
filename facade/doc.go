// Package facade is the public entry point: Acquire, Release and Borrow
// resolve the calling OS thread's pool, creating it lazily on first
// use, and forward to it. Client code touches nothing else; the
// per-thread lifecycle stays hidden.
//
//	greeting := facade.Borrow(func(b *mem.Bytes) string {
//		b.AppendString("Do you like cupcakes?")
//		return b.String()
//	})
//
// Pools are keyed by OS thread id. A goroutine that owns its thread
// (facade.Pin, or runtime.LockOSThread directly) therefore owns its
// pool outright and buffers it releases never surface on another
// thread. Unpinned goroutines may migrate between threads; each shell
// carries a mutex so that remains safe, at the cost of approximate
// locality. The mutex is never held across a Borrow callback, so
// callbacks may call back into the facade and simply observe the
// temporarily shrunk free list.
//
// Go offers no thread-exit hook, so teardown is explicit: workers call
// Detach before exiting their thread, and Reset drops every pool.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package facade
