package mem_test

import (
	"fmt"
	"testing"

	"github.com/momentics/hioload-mempool/mem"
)

func TestBytesZeroValue(t *testing.T) {
	var b mem.Bytes
	if b.Len() != 0 || b.Cap() != 0 {
		t.Fatalf("zero value not empty: len=%d cap=%d", b.Len(), b.Cap())
	}
}

func TestBytesAppendAndClip(t *testing.T) {
	var b mem.Bytes
	b.AppendString("Do you like cupcakes?")
	if b.Len() != 21 {
		t.Fatalf("len=%d, want 21", b.Len())
	}
	b.Clip()
	if b.Cap() != 21 {
		t.Fatalf("clipped cap=%d, want 21", b.Cap())
	}
	if b.String() != "Do you like cupcakes?" {
		t.Fatalf("contents corrupted by Clip: %q", b.String())
	}
}

func TestBytesGrowRetainsContents(t *testing.T) {
	var b mem.Bytes
	b.AppendString("abc")
	b.Grow(64)
	if b.Cap()-b.Len() < 64 {
		t.Fatalf("grow left only %d spare bytes", b.Cap()-b.Len())
	}
	if b.String() != "abc" {
		t.Fatalf("contents corrupted by Grow: %q", b.String())
	}
}

func TestBytesWriter(t *testing.T) {
	var b mem.Bytes
	fmt.Fprintf(&b, "x=%d", 42)
	if b.String() != "x=42" {
		t.Fatalf("got %q", b.String())
	}
	n, err := b.WriteString("!")
	if n != 1 || err != nil {
		t.Fatalf("WriteString: n=%d err=%v", n, err)
	}
}

func TestBytesExtractTruncates(t *testing.T) {
	var b mem.Bytes
	b.AppendString("hello")
	c := b.Cap()
	buf := b.ExtractBuffer()
	if buf.Zero() {
		t.Fatal("expected a live descriptor")
	}
	if buf.Cap != c {
		t.Fatalf("descriptor cap=%d, want %d", buf.Cap, c)
	}
	if b.Len() != 0 || b.Cap() != 0 {
		t.Fatal("container still owns storage after extract")
	}

	var back mem.Bytes
	back.AdoptBuffer(buf)
	if back.Len() != 0 {
		t.Fatalf("adopted container has len=%d, want 0", back.Len())
	}
	if back.Cap() != c {
		t.Fatalf("adopted cap=%d, want %d", back.Cap(), c)
	}
}

func TestBytesExtractEmpty(t *testing.T) {
	var b mem.Bytes
	if buf := b.ExtractBuffer(); !buf.Zero() {
		t.Fatal("empty container produced a descriptor")
	}
}

func TestBytesClipEmptyDropsBuffer(t *testing.T) {
	var b mem.Bytes
	b.Grow(32)
	b.Clip()
	if b.Cap() != 0 {
		t.Fatalf("cap=%d after clipping empty container, want 0", b.Cap())
	}
}
