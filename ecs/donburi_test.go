package ecs

import (
	"testing"

	"github.com/phanxgames/pinchpan"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitGesture(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []pinchpan.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e pinchpan.GestureEvent) {
		received = append(received, e)
	})

	store.EmitGesture(pinchpan.PanEvent(pinchpan.Vec2{X: -20}))
	store.EmitGesture(pinchpan.ZoomEvent(1.0, pinchpan.Vec2{X: 40}))

	// Events are queued; process them.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != pinchpan.GesturePan || received[0].Pan.X != -20 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != pinchpan.GestureZoom || received[1].ZoomDelta != 1.0 || received[1].Center.X != 40 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_FromController(t *testing.T) {
	world := donburi.NewWorld()
	c := pinchpan.NewController(nil)
	c.SetGestureStore(NewDonburiStore(world))

	var zooms int
	GestureEventType.Subscribe(world, func(w donburi.World, e pinchpan.GestureEvent) {
		if e.Type == pinchpan.GestureZoom {
			zooms++
		}
	})

	for _, ev := range []pinchpan.PointerEvent{
		{ID: 1, Type: pinchpan.PointerDown},
		{ID: 2, Type: pinchpan.PointerDown, X: 40},
		{ID: 2, Type: pinchpan.PointerMove, X: 80},
		{ID: 2, Type: pinchpan.PointerMove, X: 90},
		{ID: 2, Type: pinchpan.PointerMove, X: 100},
	} {
		c.Event(ev)
	}
	events.ProcessAllEvents(world)

	if zooms != 2 {
		t.Errorf("expected 2 zoom events in the world, got %d", zooms)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e pinchpan.GestureEvent) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, e pinchpan.GestureEvent) {
		count2++
	})

	store.EmitGesture(pinchpan.PanEvent(pinchpan.Vec2{}))
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestAttachPublishesStateChanges(t *testing.T) {
	world := donburi.NewWorld()
	c := pinchpan.NewController(nil)
	handle := Attach(world, c)

	var changes []StateChange
	StateChangeEventType.Subscribe(world, func(w donburi.World, e StateChange) {
		changes = append(changes, e)
	})
	var gestures int
	GestureEventType.Subscribe(world, func(w donburi.World, e pinchpan.GestureEvent) {
		gestures++
	})

	for _, ev := range []pinchpan.PointerEvent{
		{ID: 1, Type: pinchpan.PointerDown},
		{ID: 2, Type: pinchpan.PointerDown, X: 40},
		{ID: 2, Type: pinchpan.PointerMove, X: 80},
		{ID: 2, Type: pinchpan.PointerMove, X: 90},
		{ID: 2, Type: pinchpan.PointerUp, X: 90},
	} {
		c.Event(ev)
	}
	events.ProcessAllEvents(world)

	if gestures != 2 {
		t.Errorf("expected 2 gestures, got %d", gestures)
	}
	if len(changes) != 3 {
		t.Fatalf("expected 3 state changes, got %d: %v", len(changes), changes)
	}
	if changes[0].To != pinchpan.StateTwoFingersIdle || changes[0].Began() || changes[0].Ended() {
		t.Errorf("change 0: %+v", changes[0])
	}
	if !changes[1].Began() {
		t.Errorf("change 1 should begin the pinch: %+v", changes[1])
	}
	if !changes[2].Ended() || changes[2].To != pinchpan.StateIdle {
		t.Errorf("change 2 should end the pinch: %+v", changes[2])
	}

	handle.Remove()
	c.Event(pinchpan.PointerEvent{ID: 2, Type: pinchpan.PointerDown, X: 40})
	events.ProcessAllEvents(world)
	if len(changes) != 3 {
		t.Errorf("removed handle still publishes: %v", changes)
	}
}
