// File: internal/concurrency/concurrency.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// OS thread identity and pinning helpers backing per-thread pooling.
// ThreadID is implemented per platform (Linux/Windows) via build tags;
// unsupported systems fall back to a single shared identity.

package concurrency

import "runtime"

// Pin wires the calling goroutine to its current OS thread, giving it
// exclusive use of that thread and therefore of that thread's pool.
// Returns the matching unpin func. Long-lived workers pin once at
// startup and unpin before exiting.
func Pin() (unpin func()) {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}
