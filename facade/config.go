// File: facade/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

// Config holds parameters applied to per-thread pools as they are
// created. Changing the configuration affects only pools created
// afterwards; existing pools keep their settings.
type Config struct {
	InitialCapacity int  // preallocated free-list slots per pool
	TrailSize       int  // debug trail length per pool, 0 disables
	Verbose         bool // log pool lifecycle events
}

// DefaultConfig returns default configuration values: room for a
// handful of descriptors per pool, no debug trail, quiet.
func DefaultConfig() *Config {
	return &Config{
		InitialCapacity: 8,
		TrailSize:       0,
		Verbose:         false,
	}
}
