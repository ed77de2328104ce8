// File: pool/trail.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded trail of recent pool events for debug probes. Events are kept
// in arrival order and the oldest are evicted first, so the queue's
// FIFO discipline is exactly the retention policy.

package pool

import "github.com/eapache/queue"

// Event is one recorded pool operation.
type Event struct {
	Kind string // "acquire", "release", "discard" or "drain"
	Cap  int    // byte capacity involved, 0 when none
}

const (
	evAcquire = "acquire"
	evRelease = "release"
	evDiscard = "discard"
	evDrain   = "drain"
)

type trail struct {
	q     *queue.Queue
	limit int
}

func newTrail(limit int) *trail {
	return &trail{q: queue.New(), limit: limit}
}

func (t *trail) record(kind string, capBytes int) {
	for t.q.Length() >= t.limit {
		t.q.Remove()
	}
	t.q.Add(Event{Kind: kind, Cap: capBytes})
}

// events returns the trail contents, oldest first.
func (t *trail) events() []Event {
	out := make([]Event, 0, t.q.Length())
	for i := 0; i < t.q.Length(); i++ {
		out = append(out, t.q.Get(i).(Event))
	}
	return out
}
