//go:build !linux && !windows

// File: internal/concurrency/tid_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

// ThreadID has no cheap syscall on this platform; every caller resolves
// to the same identity, so per-thread pools collapse into one shared,
// mutex-guarded pool. Callers needing strict locality should construct
// pool.Pool instances explicitly.
func ThreadID() int64 {
	return 0
}
