// File: api/stats.go
// Package api defines pool accounting types.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// PoolStats aggregates buffer reuse accounting for one pool.
type PoolStats struct {
	Acquires      int64 // total acquire operations
	Reuses        int64 // acquires satisfied from the free list
	Releases      int64 // releases that parked a descriptor
	Discards      int64 // releases of zero-capacity containers
	Resident      int64 // descriptors currently parked
	ResidentBytes int64 // byte capacity currently parked
}
