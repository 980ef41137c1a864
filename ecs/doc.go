// Package ecs provides ECS adapters for pinchpan's gesture events.
//
// [Attach] bridges a controller into a [Donburi] world. Pans and zooms are
// published on [GestureEventType], and recognizer state transitions on
// [StateChangeEventType] so systems can tell where one pinch ends and the
// next begins.
//
// Usage:
//
//	ecs.Attach(world, controller)
//	ecs.GestureEventType.Subscribe(world, onGesture)
//
// [NewDonburiStore] is the gesture half on its own, for use with
// Controller.SetGestureStore.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
