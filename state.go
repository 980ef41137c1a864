package pinchpan

import "fmt"

// StateKind identifies which recognizer state is live.
type StateKind uint8

const (
	StateIdle           StateKind = iota // fewer or more than two pointers, or gesture discarded
	StateTwoFingersIdle                  // two pointers captured, neither past the threshold
	StatePinchPan                        // active pinch; zoom and pan are tracked
)

func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StateTwoFingersIdle:
		return "two-fingers-idle"
	case StatePinchPan:
		return "pinch-pan"
	}
	return fmt.Sprintf("StateKind(%d)", uint8(k))
}

// TwoFingersGesture is a snapshot of a two-pointer gesture. The initial
// positions are fixed at capture; the current positions and Zoom advance
// while the gesture is in StatePinchPan.
type TwoFingersGesture struct {
	FingerOne, FingerTwo   PointerID
	InitialOne, InitialTwo Vec2
	CurrentOne, CurrentTwo Vec2
	Zoom                   float64
}

// Center returns the midpoint of the current finger positions.
func (g TwoFingersGesture) Center() Vec2 {
	return Midpoint(g.CurrentOne, g.CurrentTwo)
}

// State is the recognizer's tagged state. Gesture is meaningful only when
// Kind is not StateIdle; an idle State always carries a zero Gesture so
// states compare with ==.
type State struct {
	Kind    StateKind
	Gesture TwoFingersGesture
}

var idleState = State{Kind: StateIdle}

// capture snapshots the two active pointers. Finger one is the pointer that
// went down first.
func capture(tr *PointerTracker) TwoFingersGesture {
	ids := tr.IDs()
	one, _ := tr.Position(ids[0])
	two, _ := tr.Position(ids[1])
	return TwoFingersGesture{
		FingerOne:  ids[0],
		FingerTwo:  ids[1],
		InitialOne: one,
		InitialTwo: two,
		CurrentOne: one,
		CurrentTwo: two,
		Zoom:       1.0,
	}
}

// zoomLevel is the current inter-finger distance over the initial one,
// scaled by gain. Fingers captured at the same point have no defined ratio;
// the zoom stays at 1 instead of going non-finite.
func zoomLevel(one, two Vec2, g TwoFingersGesture, gain float64) float64 {
	initial := Distance(g.InitialOne, g.InitialTwo)
	if initial == 0 {
		return 1.0
	}
	return Distance(one, two) / initial * gain
}

// nextState computes the state that follows cur once tr has absorbed an
// event. changed reports whether that event altered pointer membership.
func nextState(cur State, tr *PointerTracker, changed bool, cfg Config) State {
	switch cur.Kind {
	case StateIdle:
		if tr.Len() == 2 {
			return State{Kind: StateTwoFingersIdle, Gesture: capture(tr)}
		}
		return idleState

	case StateTwoFingersIdle:
		if changed {
			return idleState
		}
		g := cur.Gesture
		one, ok1 := tr.Position(g.FingerOne)
		two, ok2 := tr.Position(g.FingerTwo)
		if !ok1 || !ok2 {
			return idleState
		}
		if Distance(g.InitialOne, one) > cfg.Threshold ||
			Distance(g.InitialTwo, two) > cfg.Threshold {
			return State{Kind: StatePinchPan, Gesture: g}
		}
		return cur

	case StatePinchPan:
		if changed {
			return idleState
		}
		g := cur.Gesture
		one, ok1 := tr.Position(g.FingerOne)
		two, ok2 := tr.Position(g.FingerTwo)
		if !ok1 || !ok2 {
			return idleState
		}
		g.Zoom = zoomLevel(one, two, g, cfg.Gain)
		g.CurrentOne = one
		g.CurrentTwo = two
		return State{Kind: StatePinchPan, Gesture: g}
	}
	return idleState
}
