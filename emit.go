package pinchpan

// emitGestures returns the synthetic events for the step prev -> next.
// Only a step that stays in StatePinchPan emits anything, and then always
// a pan followed by a zoom: applying the pan before scaling keeps the pinch
// center visually stable.
func emitGestures(prev, next State) []GestureEvent {
	if prev.Kind != StatePinchPan || next.Kind != StatePinchPan {
		return nil
	}
	prevCenter := prev.Gesture.Center()
	nextCenter := next.Gesture.Center()
	return []GestureEvent{
		PanEvent(Sub(prevCenter, nextCenter)),
		ZoomEvent(next.Gesture.Zoom-prev.Gesture.Zoom, nextCenter),
	}
}
