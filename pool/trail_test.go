package pool_test

import (
	"testing"

	"github.com/momentics/hioload-mempool/mem"
	"github.com/momentics/hioload-mempool/pool"
)

func TestTrailRecordsEvents(t *testing.T) {
	p := pool.New(pool.WithTrail(8))
	pool.Borrow(p, func(b *mem.Bytes) int {
		b.AppendString("abc")
		return 0
	})

	events, ok := p.DumpState()["trail"].([]pool.Event)
	if !ok {
		t.Fatalf("trail missing from state: %#v", p.DumpState())
	}
	// A cold borrow is one acquire miss plus one release.
	if len(events) != 2 {
		t.Fatalf("recorded %d events, want 2: %v", len(events), events)
	}
	if events[0].Kind != "acquire" || events[0].Cap != 0 {
		t.Fatalf("first event = %+v, want cold acquire", events[0])
	}
	if events[1].Kind != "release" || events[1].Cap < 3 {
		t.Fatalf("second event = %+v, want release of >= 3 bytes", events[1])
	}
}

func TestTrailEvictsOldest(t *testing.T) {
	p := pool.New(pool.WithTrail(3))
	for i := 0; i < 5; i++ {
		pool.Borrow(p, func(b *mem.Bytes) int {
			b.AppendString("x")
			return 0
		})
	}

	events := p.DumpState()["trail"].([]pool.Event)
	if len(events) != 3 {
		t.Fatalf("trail holds %d events, want 3", len(events))
	}
	// Newest survives eviction: a borrow always ends with a release.
	if events[len(events)-1].Kind != "release" {
		t.Fatalf("newest event = %+v, want release", events[len(events)-1])
	}
}

func TestTrailDisabledByDefault(t *testing.T) {
	p := pool.New()
	pool.Borrow(p, func(b *mem.Bytes) int { return 0 })
	if _, ok := p.DumpState()["trail"]; ok {
		t.Fatal("trail present without WithTrail")
	}
}
