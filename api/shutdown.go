// File: api/shutdown.go
// Package api defines the unified teardown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Drainer unifies teardown for components that park reusable
// allocations. Draining drops every parked allocation; nothing needs
// destruction since parked buffers hold zero live elements.
type Drainer interface {
	// Drain drops all parked allocations and reports how many were
	// dropped.
	Drain() int
}
