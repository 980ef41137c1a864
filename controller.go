package pinchpan

import "fmt"

// Consumer receives events downstream of a Controller: synthetic
// GestureEvent values first, then the host event as the controller's
// PointerEventPolicy allows.
type Consumer interface {
	HandleEvent(ev any)
}

// ConsumerFunc adapts a plain function to the Consumer interface.
type ConsumerFunc func(ev any)

// HandleEvent calls f(ev).
func (f ConsumerFunc) HandleEvent(ev any) { f(ev) }

// GestureStore is the interface for optional ECS integration.
// When set on a Controller, gesture events are forwarded to the ECS.
type GestureStore interface {
	EmitGesture(event GestureEvent)
}

// --- Handler registry ---

type gestureHandler struct {
	id uint32
	fn func(GestureEvent)
}

type stateHandler struct {
	id uint32
	fn func(from, to StateKind)
}

type handlerKind uint8

const (
	handlerPan handlerKind = iota
	handlerZoom
	handlerState
)

type handlerRegistry struct {
	pan    []gestureHandler
	zoom   []gestureHandler
	state  []stateHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerPan:
		h.reg.pan = removeGestureHandler(h.reg.pan, h.id)
	case handlerZoom:
		h.reg.zoom = removeGestureHandler(h.reg.zoom, h.id)
	case handlerState:
		for i := range h.reg.state {
			if h.reg.state[i].id == h.id {
				h.reg.state = append(h.reg.state[:i], h.reg.state[i+1:]...)
				return
			}
		}
	}
}

func removeGestureHandler(s []gestureHandler, id uint32) []gestureHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = gestureHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Pointer event policy ---

// PointerEventPolicy selects what a Controller forwards downstream for each
// raw pointer event once its gestures have been delivered.
type PointerEventPolicy uint8

const (
	// ForwardPointerEvents passes every raw PointerEvent through unchanged.
	ForwardPointerEvents PointerEventPolicy = iota
	// UseMouseAPI forwards a MouseEvent for the primary pointer instead of
	// the raw event, for consumers written against a single mouse. Events
	// from any other pointer are not forwarded.
	UseMouseAPI
	// SuppressPointerEvents forwards only the gestures.
	SuppressPointerEvents
)

func (p PointerEventPolicy) String() string {
	switch p {
	case ForwardPointerEvents:
		return "forward"
	case UseMouseAPI:
		return "mouse"
	case SuppressPointerEvents:
		return "suppress"
	}
	return fmt.Sprintf("PointerEventPolicy(%d)", uint8(p))
}

// MouseEvent is what UseMouseAPI forwards in place of a pointer event.
// Type reuses the pointer event kinds: down and up are button presses,
// move is cursor motion with or without the button held.
type MouseEvent struct {
	Type PointerEventType
	X, Y float64
	// Pressed reports whether the primary button is held after this event.
	Pressed bool
}

// Pos returns the event position as a Vec2.
func (e MouseEvent) Pos() Vec2 {
	return Vec2{e.X, e.Y}
}

// mouseAPI maps a multi-pointer stream onto one mouse. The first pointer
// to go down becomes the primary and owns the button until it lifts.
// With no primary, hover motion from any pointer moves the cursor.
type mouseAPI struct {
	primary PointerID
	held    bool
}

func (m *mouseAPI) translate(ev PointerEvent) (MouseEvent, bool) {
	switch ev.Type {
	case PointerDown:
		if m.held {
			return MouseEvent{}, false
		}
		m.primary, m.held = ev.ID, true
		return MouseEvent{Type: PointerDown, X: ev.X, Y: ev.Y, Pressed: true}, true
	case PointerUp, PointerLeave:
		if m.held && ev.ID == m.primary {
			m.held = false
			return MouseEvent{Type: ev.Type, X: ev.X, Y: ev.Y}, true
		}
		if !m.held && ev.Type == PointerLeave {
			return MouseEvent{Type: PointerLeave, X: ev.X, Y: ev.Y}, true
		}
		return MouseEvent{}, false
	default: // move, enter
		if m.held && ev.ID != m.primary {
			return MouseEvent{}, false
		}
		return MouseEvent{Type: ev.Type, X: ev.X, Y: ev.Y, Pressed: m.held}, true
	}
}

func (m *mouseAPI) reset() {
	*m = mouseAPI{}
}

// --- Controller ---

// Controller sits between a host event source and a downstream consumer.
// Pointer events run through a Recognizer; the resulting gestures are
// delivered first and the raw event is forwarded afterwards according to
// the PointerEventPolicy. Every other event bypasses recognition and is
// forwarded unchanged.
type Controller struct {
	rec      *Recognizer
	next     Consumer
	store    GestureStore
	handlers handlerRegistry
	policy   PointerEventPolicy
	mouse    mouseAPI
}

// NewController creates a Controller with a default Recognizer. next may be
// nil when only the callbacks are of interest.
func NewController(next Consumer) *Controller {
	return NewControllerWithRecognizer(NewRecognizer(), next)
}

// NewControllerWithRecognizer creates a Controller around an existing
// recognizer, e.g. one built with NewRecognizerWithConfig.
func NewControllerWithRecognizer(rec *Recognizer, next Consumer) *Controller {
	return &Controller{rec: rec, next: next}
}

// SetPointerEventPolicy changes how raw pointer events are forwarded.
// Switching policies releases any pointer the mouse mapping was holding.
func (c *Controller) SetPointerEventPolicy(p PointerEventPolicy) {
	c.policy = p
	c.mouse.reset()
}

// PointerEventPolicy returns the current forwarding policy.
func (c *Controller) PointerEventPolicy() PointerEventPolicy {
	return c.policy
}

// Recognizer returns the controller's recognizer.
func (c *Controller) Recognizer() *Recognizer {
	return c.rec
}

// SetGestureStore sets the optional ECS bridge.
func (c *Controller) SetGestureStore(store GestureStore) {
	c.store = store
}

// OnPan registers a callback for pan gestures.
func (c *Controller) OnPan(fn func(GestureEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.pan = append(c.handlers.pan, gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, kind: handlerPan}
}

// OnZoom registers a callback for zoom gestures.
func (c *Controller) OnZoom(fn func(GestureEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.zoom = append(c.handlers.zoom, gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, kind: handlerZoom}
}

// OnStateChange registers a callback fired whenever the recognizer changes
// state kind. Leaving StatePinchPan marks the end of a gesture, which lets
// consumers that accumulate zoom deltas reset.
func (c *Controller) OnStateChange(fn func(from, to StateKind)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.state = append(c.handlers.state, stateHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, kind: handlerState}
}

// Event routes one host event and returns the gestures it produced.
func (c *Controller) Event(ev any) []GestureEvent {
	if _, ok := AsPointerEvent(ev); !ok {
		c.forward(ev)
		return nil
	}

	pe := MustPointerEvent(ev)
	from := c.rec.State().Kind
	gestures := c.rec.processPointer(pe)
	for _, g := range gestures {
		c.fireGesture(g)
	}
	if to := c.rec.State().Kind; to != from {
		for _, h := range c.handlers.state {
			h.fn(from, to)
		}
	}
	c.forwardPointer(ev, pe)
	return gestures
}

func (c *Controller) forwardPointer(raw any, pe PointerEvent) {
	switch c.policy {
	case ForwardPointerEvents:
		c.forward(raw)
	case UseMouseAPI:
		if me, ok := c.mouse.translate(pe); ok {
			c.forward(me)
		}
	}
}

// HandleEvent implements Consumer so controllers can be chained.
func (c *Controller) HandleEvent(ev any) {
	c.Event(ev)
}

func (c *Controller) fireGesture(g GestureEvent) {
	var handlers []gestureHandler
	switch g.Type {
	case GesturePan:
		handlers = c.handlers.pan
	case GestureZoom:
		handlers = c.handlers.zoom
	}
	for _, h := range handlers {
		h.fn(g)
	}
	if c.store != nil {
		c.store.EmitGesture(g)
	}
	c.forward(g)
}

func (c *Controller) forward(ev any) {
	if c.next != nil {
		c.next.HandleEvent(ev)
	}
}
