package viewer

// MaxHistoryLength bounds the number of locations History retains. Once the
// bound is reached, remembering a new location evicts the oldest entry.
const MaxHistoryLength = 256

// History is a bounded back/forward record of visited locations.
type History struct {
	entries []Location
	pos     int // cursor; -1 when empty
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{pos: -1}
}

// NewHistoryFrom creates a history seeded from a persisted ordered list,
// oldest first. Only the newest MaxHistoryLength entries are kept; the
// cursor starts at the last entry.
func NewHistoryFrom(locations []Location) *History {
	if n := len(locations); n > MaxHistoryLength {
		locations = locations[n-MaxHistoryLength:]
	}
	entries := make([]Location, len(locations))
	copy(entries, locations)
	return &History{
		entries: entries,
		pos:     len(entries) - 1,
	}
}

// Remember records a visit. Any forward entries past the cursor are
// discarded, the oldest entry is evicted if the bound is exceeded, and the
// cursor moves to the new tip.
func (h *History) Remember(loc Location) {
	if h.pos < len(h.entries)-1 {
		h.entries = h.entries[:h.pos+1]
	}
	h.entries = append(h.entries, loc)
	if len(h.entries) > MaxHistoryLength {
		h.entries = h.entries[1:]
	}
	h.pos = len(h.entries) - 1
}

// Current returns the location at the cursor, and false if the history is
// empty.
func (h *History) Current() (Location, bool) {
	if h.pos < 0 || h.pos >= len(h.entries) {
		return Location{}, false
	}
	return h.entries[h.pos], true
}

// Back moves one step back. Returns the new current location and true if
// movement occurred; at the oldest entry the state is unchanged.
func (h *History) Back() (Location, bool) {
	if h.pos <= 0 {
		return Location{}, false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Forward moves one step forward. Returns the new current location and true
// if movement occurred; at the newest entry the state is unchanged.
func (h *History) Forward() (Location, bool) {
	if h.pos >= len(h.entries)-1 {
		return Location{}, false
	}
	h.pos++
	return h.entries[h.pos], true
}

// CanGoBack reports whether there is a previous entry.
func (h *History) CanGoBack() bool {
	return h.pos > 0
}

// CanGoForward reports whether there is a next entry.
func (h *History) CanGoForward() bool {
	return h.pos < len(h.entries)-1
}

// Delete removes the entry at index i. An out-of-range index is a no-op.
// The cursor is re-validated so it stays within bounds.
func (h *History) Delete(i int) {
	if i < 0 || i >= len(h.entries) {
		return
	}
	h.entries = append(h.entries[:i], h.entries[i+1:]...)
	if i < h.pos {
		h.pos--
	}
	if h.pos >= len(h.entries) {
		h.pos = len(h.entries) - 1
	}
}

// Clear resets the history to empty with no current location.
func (h *History) Clear() {
	h.entries = nil
	h.pos = -1
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Position returns the cursor index, or -1 when the history is empty.
func (h *History) Position() int {
	return h.pos
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []Location {
	result := make([]Location, len(h.entries))
	copy(result, h.entries)
	return result
}
