package pinchpan

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultMinZoom = 0.1
	defaultMaxZoom = 10.0
)

// Viewport is a camera driven by gesture events: pans scroll it and zooms
// scale it about the pinch center. It consumes the deltas a Controller
// emits and accumulates them into an absolute zoom.
type Viewport struct {
	// X and Y are the world-space position shown at the center of Screen.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// MinZoom and MaxZoom clamp Zoom.
	MinZoom, MaxZoom float64
	// Screen is the screen-space rectangle the viewport renders into.
	Screen Rect

	pinching   bool
	pinchBase  float64
	pinchRatio float64

	zoomTween *gween.Tween
}

// NewViewport creates a Viewport with zoom 1 centered on the world origin.
func NewViewport(screen Rect) *Viewport {
	return &Viewport{
		Zoom:    1.0,
		MinZoom: defaultMinZoom,
		MaxZoom: defaultMaxZoom,
		Screen:  screen,
	}
}

// Apply updates the viewport from one gesture event. Pan events move the
// camera so content follows the fingers; zoom deltas are summed into the
// cumulative ratio of the running gesture.
func (v *Viewport) Apply(ev GestureEvent) {
	switch ev.Type {
	case GesturePan:
		v.X += ev.Pan.X / v.Zoom
		v.Y += ev.Pan.Y / v.Zoom
	case GestureZoom:
		if !v.pinching {
			v.pinching = true
			v.pinchBase = v.Zoom
			v.pinchRatio = 1.0
			v.zoomTween = nil
		}
		v.pinchRatio += ev.ZoomDelta
		v.zoomAbout(v.pinchBase*v.pinchRatio, ev.Center)
	}
}

// HandleEvent implements Consumer. Gestures are applied; a raw pointer
// going down, up or leaving changes membership, which always ends the
// recognizer's gesture, so it ends zoom accumulation here too. This needs
// the controller's default ForwardPointerEvents policy; under any other
// policy call EndGesture from Controller.OnStateChange instead.
func (v *Viewport) HandleEvent(ev any) {
	switch e := ev.(type) {
	case GestureEvent:
		v.Apply(e)
	case PointerEvent:
		switch e.Type {
		case PointerDown, PointerUp, PointerLeave:
			v.EndGesture()
		}
	}
}

// EndGesture ends zoom accumulation; the next zoom event starts a new
// gesture from the current Zoom.
func (v *Viewport) EndGesture() {
	v.pinching = false
}

// zoomAbout sets the zoom while keeping the world point under the screen
// position center fixed.
func (v *Viewport) zoomAbout(z float64, center Vec2) {
	z = v.clampZoom(z)
	wx, wy := v.ScreenToWorld(center.X, center.Y)
	c := v.Screen.Center()
	v.Zoom = z
	v.X = wx - (center.X-c.X)/z
	v.Y = wy - (center.Y-c.Y)/z
}

func (v *Viewport) clampZoom(z float64) float64 {
	if math.IsNaN(z) || z <= 0 {
		return v.Zoom
	}
	return math.Max(v.MinZoom, math.Min(z, v.MaxZoom))
}

// ZoomTo animates the zoom to z over duration seconds, about the screen
// center. Call Update each frame to advance it.
func (v *Viewport) ZoomTo(z float64, duration float32, easeFn ease.TweenFunc) {
	v.zoomTween = gween.New(float32(v.Zoom), float32(v.clampZoom(z)), duration, easeFn)
}

// Update advances a running ZoomTo animation by dt seconds.
func (v *Viewport) Update(dt float32) {
	if v.zoomTween == nil {
		return
	}
	val, done := v.zoomTween.Update(dt)
	v.zoomAbout(float64(val), v.Screen.Center())
	if done {
		v.zoomTween = nil
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c := v.Screen.Center()
	return (wx-v.X)*v.Zoom + c.X, (wy-v.Y)*v.Zoom + c.Y
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c := v.Screen.Center()
	return (sx-c.X)/v.Zoom + v.X, (sy-c.Y)/v.Zoom + v.Y
}

// VisibleBounds returns the world-space rectangle currently on screen.
func (v *Viewport) VisibleBounds() Rect {
	x0, y0 := v.ScreenToWorld(v.Screen.X, v.Screen.Y)
	x1, y1 := v.ScreenToWorld(v.Screen.X+v.Screen.Width, v.Screen.Y+v.Screen.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
