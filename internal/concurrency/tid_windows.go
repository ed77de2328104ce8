//go:build windows

// File: internal/concurrency/tid_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import "golang.org/x/sys/windows"

// ThreadID returns the Win32 thread id of the calling OS thread.
func ThreadID() int64 {
	return int64(windows.GetCurrentThreadId())
}
