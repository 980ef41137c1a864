package pinchpan

import (
	"errors"
	"fmt"
	"math"
)

// Vec2 is a 2D vector used for positions, displacements, and centers
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// PointerID identifies a physical contact point. It is stable from the
// pointer's Down until its Up or Leave.
type PointerID int

// PointerEventType identifies a kind of raw pointer event.
type PointerEventType uint8

const (
	PointerDown  PointerEventType = iota // contact started
	PointerMove                          // contact moved
	PointerUp                            // contact ended
	PointerEnter                         // pointer entered the host surface
	PointerLeave                         // pointer left the host surface; treated like Up
)

var pointerEventNames = [...]string{"down", "move", "up", "enter", "leave"}

func (t PointerEventType) String() string {
	if int(t) < len(pointerEventNames) {
		return pointerEventNames[t]
	}
	return fmt.Sprintf("PointerEventType(%d)", uint8(t))
}

func (t PointerEventType) valid() bool {
	return t <= PointerLeave
}

// PointerEvent is a raw pointer event as delivered by the host.
type PointerEvent struct {
	ID   PointerID
	Type PointerEventType
	X, Y float64
}

// Pos returns the event position.
func (e PointerEvent) Pos() Vec2 {
	return Vec2{e.X, e.Y}
}

// GestureType identifies a kind of synthetic gesture event.
type GestureType uint8

const (
	GesturePan  GestureType = iota // joint two-finger translation
	GestureZoom                    // change in inter-finger distance ratio
)

func (t GestureType) String() string {
	switch t {
	case GesturePan:
		return "pan"
	case GestureZoom:
		return "zoom"
	}
	return fmt.Sprintf("GestureType(%d)", uint8(t))
}

// GestureEvent is a synthetic event produced by the recognizer.
type GestureEvent struct {
	Type GestureType
	// Pan is the displacement that keeps content fixed under the fingers,
	// i.e. the inverse of the fingers' travel (valid for GesturePan).
	Pan Vec2
	// ZoomDelta is the step-to-step change of the zoom ratio and Center the
	// current midpoint of the two fingers (valid for GestureZoom).
	ZoomDelta float64
	Center    Vec2
}

// PanEvent returns a GesturePan event with the given displacement.
func PanEvent(v Vec2) GestureEvent {
	return GestureEvent{Type: GesturePan, Pan: v}
}

// ZoomEvent returns a GestureZoom event.
func ZoomEvent(delta float64, center Vec2) GestureEvent {
	return GestureEvent{Type: GestureZoom, ZoomDelta: delta, Center: center}
}

const (
	// DefaultThreshold is the single-finger displacement required before a
	// two-finger touch becomes a pinch.
	DefaultThreshold = 20.0
	// DefaultGain scales the raw distance ratio.
	DefaultGain = 1.0
)

// ErrInvalidConfig is returned when a tuning value is out of range.
var ErrInvalidConfig = errors.New("pinchpan: invalid config")

// Config tunes the recognizer. The zero value is not valid; start from
// DefaultConfig.
type Config struct {
	Threshold float64 // pinch start distance, in input units
	Gain      float64 // zoom ratio multiplier
}

// DefaultConfig returns the stock tuning: threshold 20, gain 1.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold, Gain: DefaultGain}
}

// Validate reports whether the config can drive a recognizer.
func (c Config) Validate() error {
	if !(c.Threshold >= 0) || math.IsInf(c.Threshold, 0) {
		return fmt.Errorf("%w: threshold %v", ErrInvalidConfig, c.Threshold)
	}
	if !(c.Gain > 0) || math.IsInf(c.Gain, 0) {
		return fmt.Errorf("%w: gain %v", ErrInvalidConfig, c.Gain)
	}
	return nil
}

// AsPointerEvent extracts a pointer event from an arbitrary host event.
// It returns false for anything that is not a PointerEvent (or pointer to
// one) with a known type, so callers can route other events elsewhere.
func AsPointerEvent(ev any) (PointerEvent, bool) {
	switch e := ev.(type) {
	case PointerEvent:
		return e, e.Type.valid()
	case *PointerEvent:
		if e == nil {
			return PointerEvent{}, false
		}
		return *e, e.Type.valid()
	}
	return PointerEvent{}, false
}

// MustPointerEvent is like AsPointerEvent but panics when ev is not a
// pointer event. Use it only after the event kind has been checked.
func MustPointerEvent(ev any) PointerEvent {
	pe, ok := AsPointerEvent(ev)
	if !ok {
		panic(fmt.Sprintf("pinchpan: %T is not a pointer event", ev))
	}
	return pe
}
