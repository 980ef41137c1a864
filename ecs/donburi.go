package ecs

import (
	"github.com/phanxgames/pinchpan"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType carries every pan and zoom a controller emits.
var GestureEventType = events.NewEventType[pinchpan.GestureEvent]()

// StateChange is published when the recognizer moves between states.
// Began and Ended bracket one pinch, so systems that accumulate zoom
// deltas know where a gesture starts and stops.
type StateChange struct {
	From, To pinchpan.StateKind
}

// Began reports whether this change entered StatePinchPan.
func (s StateChange) Began() bool {
	return s.To == pinchpan.StatePinchPan
}

// Ended reports whether this change left StatePinchPan.
func (s StateChange) Ended() bool {
	return s.From == pinchpan.StatePinchPan
}

// StateChangeEventType carries recognizer state transitions.
var StateChangeEventType = events.NewEventType[StateChange]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a GestureStore that publishes into world.
// Events queue until GestureEventType.ProcessEvents or
// events.ProcessAllEvents runs.
func NewDonburiStore(world donburi.World) pinchpan.GestureStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitGesture(event pinchpan.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}

// Attach bridges c into world: gestures go to GestureEventType and state
// transitions to StateChangeEventType. Removing the returned handle stops
// the transitions; call c.SetGestureStore(nil) to stop the gestures.
func Attach(world donburi.World, c *pinchpan.Controller) pinchpan.CallbackHandle {
	c.SetGestureStore(NewDonburiStore(world))
	return c.OnStateChange(func(from, to pinchpan.StateKind) {
		StateChangeEventType.Publish(world, StateChange{From: from, To: to})
	})
}
