package viewer

import (
	"fmt"
	"testing"
)

func loc(s string) Location { return PathLocation(s) }

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()

	if _, ok := h.Current(); ok {
		t.Error("empty history should have no current location")
	}
	if _, ok := h.Back(); ok {
		t.Error("Back on empty history should fail")
	}
	if _, ok := h.Forward(); ok {
		t.Error("Forward on empty history should fail")
	}
	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
}

func TestHistoryRememberJumpsToTip(t *testing.T) {
	h := NewHistory()
	h.Remember(loc("a"))
	h.Remember(loc("b"))
	h.Remember(loc("c"))

	if _, ok := h.Back(); !ok {
		t.Fatal("Back should succeed")
	}
	if _, ok := h.Back(); !ok {
		t.Fatal("second Back should succeed")
	}

	h.Remember(loc("d"))
	cur, ok := h.Current()
	if !ok || cur.String() != "d" {
		t.Errorf("Current = %q, want d", cur.String())
	}
	if _, ok := h.Forward(); ok {
		t.Error("Forward past a fresh Remember should fail")
	}
}

func TestHistoryBackForwardRestores(t *testing.T) {
	h := NewHistory()
	h.Remember(loc("a"))
	h.Remember(loc("b"))

	before, _ := h.Current()
	if _, ok := h.Back(); !ok {
		t.Fatal("Back should succeed")
	}
	if _, ok := h.Forward(); !ok {
		t.Fatal("Forward should succeed")
	}
	after, _ := h.Current()
	if before != after {
		t.Errorf("Back then Forward changed current: %q -> %q", before.String(), after.String())
	}
}

func TestHistoryBoundariesAreNoOps(t *testing.T) {
	h := NewHistory()
	h.Remember(loc("a"))
	h.Remember(loc("b"))

	if _, ok := h.Forward(); ok {
		t.Error("Forward at newest should fail")
	}
	cur, _ := h.Current()
	if cur.String() != "b" {
		t.Errorf("Current = %q after failed Forward, want b", cur.String())
	}

	h.Back()
	if _, ok := h.Back(); ok {
		t.Error("Back at oldest should fail")
	}
	cur, _ = h.Current()
	if cur.String() != "a" {
		t.Errorf("Current = %q after failed Back, want a", cur.String())
	}
}

func TestHistoryBackThenRememberScenario(t *testing.T) {
	h := NewHistoryFrom([]Location{loc("a"), loc("b"), loc("c")})

	cur, _ := h.Current()
	if cur.String() != "c" {
		t.Fatalf("seeded cursor at %q, want c", cur.String())
	}

	prev, ok := h.Back()
	if !ok || prev.String() != "b" {
		t.Fatalf("Back = %q, want b", prev.String())
	}

	h.Remember(loc("d"))
	cur, _ = h.Current()
	if cur.String() != "d" {
		t.Errorf("Current = %q after Remember, want d", cur.String())
	}
	if _, ok := h.Forward(); ok {
		t.Error("Forward should fail, nothing beyond d")
	}
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory()
	for i := 0; i < MaxHistoryLength; i++ {
		h.Remember(loc(fmt.Sprintf("entry-%d", i)))
	}
	if h.Len() != MaxHistoryLength {
		t.Fatalf("Len = %d, want %d", h.Len(), MaxHistoryLength)
	}

	h.Remember(loc("one-more"))
	if h.Len() != MaxHistoryLength {
		t.Errorf("Len = %d after overflow, want %d", h.Len(), MaxHistoryLength)
	}

	entries := h.Entries()
	if entries[0].String() != "entry-1" {
		t.Errorf("oldest entry = %q, want entry-1 (entry-0 evicted)", entries[0].String())
	}
	if entries[len(entries)-1].String() != "one-more" {
		t.Errorf("newest entry = %q, want one-more", entries[len(entries)-1].String())
	}
	cur, _ := h.Current()
	if cur.String() != "one-more" {
		t.Errorf("Current = %q, want one-more", cur.String())
	}
}

func TestHistoryRetainsMostRecent(t *testing.T) {
	h := NewHistory()
	total := MaxHistoryLength + 50
	for i := 0; i < total; i++ {
		h.Remember(loc(fmt.Sprintf("entry-%d", i)))
	}

	entries := h.Entries()
	if len(entries) != MaxHistoryLength {
		t.Fatalf("Len = %d, want %d", len(entries), MaxHistoryLength)
	}
	for i, e := range entries {
		want := fmt.Sprintf("entry-%d", total-MaxHistoryLength+i)
		if e.String() != want {
			t.Fatalf("entries[%d] = %q, want %q", i, e.String(), want)
		}
	}
}

func TestHistoryDelete(t *testing.T) {
	h := NewHistoryFrom([]Location{loc("a"), loc("b"), loc("c")})

	// Out of range is a no-op.
	h.Delete(5)
	h.Delete(-1)
	if h.Len() != 3 {
		t.Fatalf("Len = %d after out-of-range Delete, want 3", h.Len())
	}
	if h.Position() != 2 {
		t.Errorf("cursor = %d after out-of-range Delete, want 2", h.Position())
	}

	// Deleting before the cursor shifts it left.
	h.Delete(0)
	cur, _ := h.Current()
	if cur.String() != "c" {
		t.Errorf("Current = %q after deleting oldest, want c", cur.String())
	}

	// Deleting at the cursor clamps it to the new last entry.
	h.Delete(1)
	cur, _ = h.Current()
	if cur.String() != "b" {
		t.Errorf("Current = %q after deleting cursor entry, want b", cur.String())
	}

	h.Delete(0)
	if _, ok := h.Current(); ok {
		t.Error("history should be empty after deleting last entry")
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistoryFrom([]Location{loc("a"), loc("b")})
	h.Clear()

	if h.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", h.Len())
	}
	if _, ok := h.Current(); ok {
		t.Error("cleared history should have no current location")
	}
	h.Remember(loc("x"))
	cur, _ := h.Current()
	if cur.String() != "x" {
		t.Errorf("Current = %q after Remember on cleared history, want x", cur.String())
	}
}

func TestHistorySeededEmpty(t *testing.T) {
	h := NewHistoryFrom(nil)
	if _, ok := h.Current(); ok {
		t.Error("history seeded with empty list should have no current location")
	}
}

func TestHistorySeedTruncatesToNewest(t *testing.T) {
	seed := make([]Location, MaxHistoryLength+10)
	for i := range seed {
		seed[i] = loc(fmt.Sprintf("entry-%d", i))
	}
	h := NewHistoryFrom(seed)

	if h.Len() != MaxHistoryLength {
		t.Fatalf("Len = %d, want %d", h.Len(), MaxHistoryLength)
	}
	if first := h.Entries()[0].String(); first != "entry-10" {
		t.Errorf("oldest entry = %q, want entry-10", first)
	}
}
