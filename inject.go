package pinchpan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Injector queues synthetic raw pointer input one frame at a time, for
// automated tests and demos that have no touch screen. Each frame is a
// batch of pointer events delivered together.
type Injector struct {
	// FingerOne and FingerTwo are the pointer ids used by InjectPinch and
	// InjectPan.
	FingerOne, FingerTwo PointerID

	frames [][]PointerEvent
}

// NewInjector creates an empty injector using pointer ids 1 and 2 for
// two-finger gestures.
func NewInjector() *Injector {
	return &Injector{FingerOne: 1, FingerTwo: 2}
}

// InjectDown queues a frame with a single pointer down event.
func (in *Injector) InjectDown(id PointerID, x, y float64) {
	in.push(PointerEvent{ID: id, Type: PointerDown, X: x, Y: y})
}

// InjectMove queues a frame with a single pointer move event.
func (in *Injector) InjectMove(id PointerID, x, y float64) {
	in.push(PointerEvent{ID: id, Type: PointerMove, X: x, Y: y})
}

// InjectUp queues a frame with a single pointer up event.
func (in *Injector) InjectUp(id PointerID, x, y float64) {
	in.push(PointerEvent{ID: id, Type: PointerUp, X: x, Y: y})
}

// InjectLeave queues a frame with a single pointer leave event.
func (in *Injector) InjectLeave(id PointerID, x, y float64) {
	in.push(PointerEvent{ID: id, Type: PointerLeave, X: x, Y: y})
}

func (in *Injector) push(evs ...PointerEvent) {
	in.frames = append(in.frames, evs)
}

// InjectPinch queues a full two-finger pinch centered on (cx, cy): both
// fingers go down fromDist apart on a horizontal line, spread or close to
// toDist over frames-2 eased move frames, and lift in the final frame.
// Minimum frames is 2 (down + up).
func (in *Injector) InjectPinch(cx, cy, fromDist, toDist float64, frames int, fn ease.TweenFunc) {
	if frames < 2 {
		frames = 2
	}
	in.twoFingers(Vec2{cx, cy}, fromDist, PointerDown)
	steps := frames - 2
	if steps > 0 {
		tw := gween.New(float32(fromDist), float32(toDist), float32(steps), easeOrLinear(fn))
		for i := 0; i < steps; i++ {
			d, _ := tw.Update(1)
			in.twoFingers(Vec2{cx, cy}, float64(d), PointerMove)
		}
	}
	in.twoFingers(Vec2{cx, cy}, toDist, PointerUp)
}

// InjectPan queues a two-finger pan: fingers spread apart on a horizontal
// line go down around (fromX, fromY), travel to (toX, toY) over frames-2
// eased move frames, and lift in the final frame.
func (in *Injector) InjectPan(fromX, fromY, toX, toY, spread float64, frames int, fn ease.TweenFunc) {
	if frames < 2 {
		frames = 2
	}
	in.twoFingers(Vec2{fromX, fromY}, spread, PointerDown)
	steps := frames - 2
	if steps > 0 {
		fn = easeOrLinear(fn)
		tx := gween.New(float32(fromX), float32(toX), float32(steps), fn)
		ty := gween.New(float32(fromY), float32(toY), float32(steps), fn)
		for i := 0; i < steps; i++ {
			x, _ := tx.Update(1)
			y, _ := ty.Update(1)
			in.twoFingers(Vec2{float64(x), float64(y)}, spread, PointerMove)
		}
	}
	in.twoFingers(Vec2{toX, toY}, spread, PointerUp)
}

func (in *Injector) twoFingers(center Vec2, dist float64, typ PointerEventType) {
	half := dist / 2
	in.push(
		PointerEvent{ID: in.FingerOne, Type: typ, X: center.X - half, Y: center.Y},
		PointerEvent{ID: in.FingerTwo, Type: typ, X: center.X + half, Y: center.Y},
	)
}

func easeOrLinear(fn ease.TweenFunc) ease.TweenFunc {
	if fn == nil {
		return ease.Linear
	}
	return fn
}

// Next pops the oldest queued frame, or returns nil when the queue is empty.
func (in *Injector) Next() []PointerEvent {
	if len(in.frames) == 0 {
		return nil
	}
	f := in.frames[0]
	copy(in.frames, in.frames[1:])
	in.frames[len(in.frames)-1] = nil
	in.frames = in.frames[:len(in.frames)-1]
	return f
}

// Pending returns the number of queued frames.
func (in *Injector) Pending() int {
	return len(in.frames)
}

// Feed pops one frame and delivers its events to c, returning the gestures
// produced. It reports false when nothing was queued.
func (in *Injector) Feed(c *Controller) ([]GestureEvent, bool) {
	frame := in.Next()
	if frame == nil {
		return nil, false
	}
	var out []GestureEvent
	for _, ev := range frame {
		out = append(out, c.Event(ev)...)
	}
	return out, true
}
