package pinchpan

import "fmt"

// debugTransition prints a state change. Only called when the recognizer is
// in debug mode.
func (r *Recognizer) debugTransition(ev PointerEvent, from, to State) {
	_, _ = fmt.Fprintf(r.debugOut,
		"[pinchpan] %s -> %s on %s id=%d at (%.1f,%.1f) | pointers: %d\n",
		from.Kind, to.Kind, ev.Type, ev.ID, ev.X, ev.Y, r.tracker.Len())
	if to.Kind == StateTwoFingersIdle {
		g := to.Gesture
		_, _ = fmt.Fprintf(r.debugOut,
			"[pinchpan] captured %d (%.1f,%.1f) and %d (%.1f,%.1f) | span: %.1f\n",
			g.FingerOne, g.InitialOne.X, g.InitialOne.Y,
			g.FingerTwo, g.InitialTwo.X, g.InitialTwo.Y,
			Distance(g.InitialOne, g.InitialTwo))
		if g.InitialOne == g.InitialTwo {
			_, _ = fmt.Fprintf(r.debugOut,
				"[pinchpan] warning: fingers captured at the same point, zoom held at 1\n")
		}
	}
}
