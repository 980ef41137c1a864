// Package ebitentouch polls Ebitengine touch and mouse input and turns it
// into the raw pointer events a pinchpan.Recognizer consumes.
package ebitentouch

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pinchpan"
)

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

	// MousePointer is the pointer id reported for the left mouse button.
	MousePointer pinchpan.PointerID = 0
)

type touchSample struct {
	id   ebiten.TouchID
	x, y float64
}

type mouseSample struct {
	x, y    float64
	pressed bool
}

// Source converts per-frame Ebitengine input state into pointer events.
// Call Poll once per Update.
type Source struct {
	// Mouse also reports the left mouse button as MousePointer, so a single
	// finger can be emulated on desktop. Under pinchpan.UseMouseAPI the
	// first pointer down, mouse or touch, drives the forwarded MouseEvent.
	Mouse bool

	touchIDs  []ebiten.TouchID
	samples   []touchSample
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	last      [maxPointers]pinchpan.Vec2
	mouseDown bool
	events    []pinchpan.PointerEvent
}

// NewSource creates a touch-only source.
func NewSource() *Source {
	return &Source{}
}

// Poll reads the current Ebitengine input state and returns the pointer
// events since the previous call. The returned slice is reused by the next
// call.
func (s *Source) Poll() []pinchpan.PointerEvent {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	s.samples = s.samples[:0]
	for _, tid := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		s.samples = append(s.samples, touchSample{id: tid, x: float64(tx), y: float64(ty)})
	}

	var mouse *mouseSample
	if s.Mouse {
		mx, my := ebiten.CursorPosition()
		mouse = &mouseSample{
			x:       float64(mx),
			y:       float64(my),
			pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		}
	}
	return s.diff(s.samples, mouse)
}

// Feed polls and delivers every event to c, returning the gestures produced.
func (s *Source) Feed(c *pinchpan.Controller) []pinchpan.GestureEvent {
	var out []pinchpan.GestureEvent
	for _, ev := range s.Poll() {
		out = append(out, c.Event(ev)...)
	}
	return out
}

// diff compares this frame's samples against the previous frame.
func (s *Source) diff(samples []touchSample, mouse *mouseSample) []pinchpan.PointerEvent {
	s.events = s.events[:0]

	if mouse != nil {
		s.diffMouse(*mouse)
	}

	var active [maxPointers]bool
	for _, ts := range samples {
		slot, fresh := s.touchSlot(ts.id)
		if slot < 0 {
			continue
		}
		active[slot] = true
		pos := pinchpan.Vec2{X: ts.x, Y: ts.y}
		switch {
		case fresh:
			s.emit(pinchpan.PointerDown, slot, pos)
		case pos != s.last[slot]:
			s.emit(pinchpan.PointerMove, slot, pos)
		}
		s.last[slot] = pos
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			s.emit(pinchpan.PointerUp, i, s.last[i])
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
	return s.events
}

func (s *Source) diffMouse(m mouseSample) {
	pos := pinchpan.Vec2{X: m.x, Y: m.y}
	switch {
	case m.pressed && !s.mouseDown:
		s.mouseDown = true
		s.emit(pinchpan.PointerDown, int(MousePointer), pos)
	case m.pressed && pos != s.last[MousePointer]:
		s.emit(pinchpan.PointerMove, int(MousePointer), pos)
	case !m.pressed && s.mouseDown:
		s.mouseDown = false
		s.emit(pinchpan.PointerUp, int(MousePointer), pos)
	}
	s.last[MousePointer] = pos
}

func (s *Source) emit(typ pinchpan.PointerEventType, slot int, pos pinchpan.Vec2) {
	s.events = append(s.events, pinchpan.PointerEvent{
		ID:   pinchpan.PointerID(slot),
		Type: typ,
		X:    pos.X,
		Y:    pos.Y,
	})
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9), allocating one
// for a touch seen for the first time. Returns -1 if all slots are in use.
func (s *Source) touchSlot(tid ebiten.TouchID) (slot int, fresh bool) {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}
