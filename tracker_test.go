package pinchpan

import "testing"

func down(id PointerID, x, y float64) PointerEvent {
	return PointerEvent{ID: id, Type: PointerDown, X: x, Y: y}
}

func move(id PointerID, x, y float64) PointerEvent {
	return PointerEvent{ID: id, Type: PointerMove, X: x, Y: y}
}

func up(id PointerID, x, y float64) PointerEvent {
	return PointerEvent{ID: id, Type: PointerUp, X: x, Y: y}
}

func TestTrackerRecord(t *testing.T) {
	tests := []struct {
		name        string
		setup       []PointerEvent
		ev          PointerEvent
		wantChanged bool
		wantLen     int
		wantPos     Vec2
		wantTracked bool
	}{
		{"down new", nil, down(1, 5, 6), true, 1, Vec2{5, 6}, true},
		{"duplicate down", []PointerEvent{down(1, 5, 6)}, down(1, 7, 8), false, 1, Vec2{7, 8}, true},
		{"move tracked", []PointerEvent{down(1, 5, 6)}, move(1, 9, 9), false, 1, Vec2{9, 9}, true},
		{"move untracked", nil, move(1, 9, 9), false, 0, Vec2{}, false},
		{"up tracked", []PointerEvent{down(1, 5, 6)}, up(1, 5, 6), true, 0, Vec2{}, false},
		{"up untracked", nil, up(1, 5, 6), false, 0, Vec2{}, false},
		{"leave tracked", []PointerEvent{down(1, 5, 6)},
			PointerEvent{ID: 1, Type: PointerLeave}, true, 0, Vec2{}, false},
		{"enter ignored", []PointerEvent{down(1, 5, 6)},
			PointerEvent{ID: 1, Type: PointerEnter, X: 50, Y: 50}, false, 1, Vec2{5, 6}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewPointerTracker()
			for _, ev := range tt.setup {
				tr.record(ev)
			}
			if got := tr.record(tt.ev); got != tt.wantChanged {
				t.Errorf("record changed = %v, want %v", got, tt.wantChanged)
			}
			if tr.Len() != tt.wantLen {
				t.Errorf("Len = %d, want %d", tr.Len(), tt.wantLen)
			}
			pos, ok := tr.Position(1)
			if ok != tt.wantTracked {
				t.Fatalf("Position tracked = %v, want %v", ok, tt.wantTracked)
			}
			if ok && pos != tt.wantPos {
				t.Errorf("Position = %v, want %v", pos, tt.wantPos)
			}
		})
	}
}

func TestTrackerIDsInsertionOrder(t *testing.T) {
	tr := NewPointerTracker()
	tr.record(down(7, 0, 0))
	tr.record(down(3, 0, 0))
	tr.record(down(5, 0, 0))
	tr.record(up(3, 0, 0))

	ids := tr.IDs()
	if len(ids) != 2 || ids[0] != 7 || ids[1] != 5 {
		t.Errorf("IDs = %v, want [7 5]", ids)
	}
}

func TestTrackerKeepsLatestOnly(t *testing.T) {
	tr := NewPointerTracker()
	tr.record(down(1, 0, 0))
	for i := 0; i < 10000; i++ {
		tr.record(move(1, float64(i), 0))
	}
	if len(tr.positions) != 1 || len(tr.ids) != 1 {
		t.Fatalf("tracker grew: %d positions, %d ids", len(tr.positions), len(tr.ids))
	}
	if p, _ := tr.Position(1); p.X != 9999 {
		t.Errorf("Position X = %v, want 9999", p.X)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewPointerTracker()
	tr.record(down(1, 0, 0))
	tr.record(down(2, 0, 0))
	tr.reset()
	if tr.Len() != 0 {
		t.Errorf("Len after reset = %d, want 0", tr.Len())
	}
	if _, ok := tr.Position(1); ok {
		t.Error("pointer 1 should be gone after reset")
	}
}
