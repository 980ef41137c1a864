// Package pinchpan recognizes two-finger pinch and pan gestures from a
// stream of raw pointer events.
//
// The core is a [Recognizer]: feed it every host event with
// [Recognizer.Process] and it returns the synthetic gestures for that step.
// It has no UI dependency and never blocks, so it can be driven from a unit
// test as easily as from a game loop.
//
//	rec := pinchpan.NewRecognizer()
//	for _, ev := range events {
//		for _, g := range rec.Process(ev) {
//			// g.Type is GesturePan or GestureZoom
//		}
//	}
//
// # States
//
// The recognizer is in one of three states. [StateIdle] holds until exactly
// two pointers are down, at which point both positions are captured and
// the state becomes [StateTwoFingersIdle]. Once either finger travels more
// than [Config.Threshold] from where it was captured the gesture becomes
// [StatePinchPan]. Any pointer going down or up while a gesture is live
// discards it and returns to idle.
//
// Every step that stays in StatePinchPan emits exactly two events, a pan
// then a zoom. The pan is the inverse of the fingers' travel, so adding it
// to a camera position keeps content under the fingers. The zoom carries the
// step-to-step change of the distance ratio along with the pinch center;
// [Viewport] shows how to accumulate it into an absolute scale.
//
// # Integration
//
// [Controller] layers host integration on top: non-pointer events pass
// straight through to a downstream [Consumer], gestures are delivered to
// callbacks ([Controller.OnPan], [Controller.OnZoom]) and an optional ECS
// [GestureStore], and the raw pointer event is always forwarded last.
//
// Touch input from [Ebitengine] is polled by the pinchpan/ebitentouch
// package; pinchpan/ecs bridges gestures into a [Donburi] world. For tests
// and demos without a touch screen, [Injector] and [TestRunner] synthesize
// eased pinch and pan sequences (via [gween]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package pinchpan
