package pinchpan

import (
	"io"
	"os"
)

// Recognizer turns a stream of raw pointer events into pan and zoom
// gestures. It is synchronous and not safe for concurrent use; hosts that
// deliver events from several goroutines must serialize calls.
type Recognizer struct {
	cfg     Config
	tracker *PointerTracker
	state   State

	debug    bool
	debugOut io.Writer
}

// NewRecognizer creates an idle recognizer with DefaultConfig.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		cfg:      DefaultConfig(),
		tracker:  NewPointerTracker(),
		state:    idleState,
		debugOut: os.Stderr,
	}
}

// NewRecognizerWithConfig creates an idle recognizer with the given tuning.
func NewRecognizerWithConfig(cfg Config) (*Recognizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := NewRecognizer()
	r.cfg = cfg
	return r, nil
}

// Process feeds one host event through the recognizer and returns the
// synthetic events it produces, in order: nothing, or a pan followed by a
// zoom. Events that are not pointer events are ignored and return nil.
func (r *Recognizer) Process(ev any) []GestureEvent {
	if _, ok := AsPointerEvent(ev); !ok {
		return nil
	}
	return r.processPointer(MustPointerEvent(ev))
}

func (r *Recognizer) processPointer(ev PointerEvent) []GestureEvent {
	changed := r.tracker.record(ev)
	next := nextState(r.state, r.tracker, changed, r.cfg)
	out := emitGestures(r.state, next)
	if r.debug && next.Kind != r.state.Kind {
		r.debugTransition(ev, r.state, next)
	}
	r.state = next
	return out
}

// State returns the current recognizer state.
func (r *Recognizer) State() State {
	return r.state
}

// ActiveCount returns the number of pointers currently down.
func (r *Recognizer) ActiveCount() int {
	return r.tracker.Len()
}

// Tracker returns the recognizer's pointer tracker for inspection.
func (r *Recognizer) Tracker() *PointerTracker {
	return r.tracker
}

// Config returns the recognizer's tuning.
func (r *Recognizer) Config() Config {
	return r.cfg
}

// Reset forgets all pointers and returns to StateIdle, discarding any
// gesture in progress.
func (r *Recognizer) Reset() {
	r.tracker.reset()
	r.state = idleState
}

// SetDebugMode enables or disables debug mode. When enabled, every state
// change is logged to stderr.
func (r *Recognizer) SetDebugMode(enabled bool) {
	r.debug = enabled
}
