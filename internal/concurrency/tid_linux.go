//go:build linux

// File: internal/concurrency/tid_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import "golang.org/x/sys/unix"

// ThreadID returns the kernel task id of the calling OS thread.
func ThreadID() int64 {
	return int64(unix.Gettid())
}
