package pinchpan

// PointerTracker holds the set of pointers that are currently down and the
// latest known position of each. No per-pointer history is retained.
type PointerTracker struct {
	positions map[PointerID]Vec2
	ids       []PointerID // insertion order; fixes finger one/two at capture
}

// NewPointerTracker creates an empty tracker.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{positions: make(map[PointerID]Vec2)}
}

// record applies a pointer event and reports whether the set of active
// pointers changed.
func (t *PointerTracker) record(ev PointerEvent) bool {
	switch ev.Type {
	case PointerDown:
		if _, ok := t.positions[ev.ID]; ok {
			// Duplicate down: refresh position only.
			t.positions[ev.ID] = ev.Pos()
			return false
		}
		t.positions[ev.ID] = ev.Pos()
		t.ids = append(t.ids, ev.ID)
		return true
	case PointerMove:
		// A move with no prior down is discarded.
		if _, ok := t.positions[ev.ID]; ok {
			t.positions[ev.ID] = ev.Pos()
		}
		return false
	case PointerUp, PointerLeave:
		if _, ok := t.positions[ev.ID]; !ok {
			return false
		}
		delete(t.positions, ev.ID)
		t.removeID(ev.ID)
		return true
	}
	return false
}

func (t *PointerTracker) removeID(id PointerID) {
	for i := range t.ids {
		if t.ids[i] == id {
			copy(t.ids[i:], t.ids[i+1:])
			t.ids = t.ids[:len(t.ids)-1]
			return
		}
	}
}

// Position returns the last known position of id, or false if id is not
// currently down.
func (t *PointerTracker) Position(id PointerID) (Vec2, bool) {
	p, ok := t.positions[id]
	return p, ok
}

// Len returns the number of active pointers.
func (t *PointerTracker) Len() int {
	return len(t.ids)
}

// IDs returns the active pointer ids in the order they went down.
// The returned slice MUST NOT be mutated.
func (t *PointerTracker) IDs() []PointerID {
	return t.ids
}

// reset forgets every pointer.
func (t *PointerTracker) reset() {
	clear(t.positions)
	t.ids = t.ids[:0]
}
