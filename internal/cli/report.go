package cli

import (
	"fmt"
	"io"

	"github.com/phanxgames/pinchpan"
)

// screen is the virtual screen replays render into.
var screen = pinchpan.Rect{Width: 800, Height: 600}

// GestureRecord is one emitted gesture tagged with the step that produced it.
type GestureRecord struct {
	Step    int     `json:"step"`
	Type    string  `json:"type"`
	DX      float64 `json:"dx"`
	DY      float64 `json:"dy"`
	Delta   float64 `json:"delta"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
}

// TransitionRecord is a change of recognizer state.
type TransitionRecord struct {
	Step int    `json:"step"`
	From string `json:"from"`
	To   string `json:"to"`
}

// ViewportRecord is the viewport after all gestures are applied.
type ViewportRecord struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// Report collects what a replay or script run produced.
type Report struct {
	Name        string             `json:"name"`
	Steps       int                `json:"steps"`
	Gestures    []GestureRecord    `json:"gestures"`
	Transitions []TransitionRecord `json:"transitions"`
	Viewport    ViewportRecord     `json:"viewport"`

	lines []reportLine
}

type reportLine struct {
	text       string
	transition bool
}

// session wires a controller to a viewport and records into a Report.
type session struct {
	ctrl   *pinchpan.Controller
	view   *pinchpan.Viewport
	report *Report
	step   int
}

func newSession(name string, conf Config) (*session, error) {
	rec, err := pinchpan.NewRecognizerWithConfig(conf.Recognizer())
	if err != nil {
		return nil, err
	}
	view := pinchpan.NewViewport(screen)
	view.MinZoom, view.MaxZoom = conf.MinZoom, conf.MaxZoom

	s := &session{
		view: view,
		report: &Report{
			Name:        name,
			Gestures:    []GestureRecord{},
			Transitions: []TransitionRecord{},
		},
	}
	s.ctrl = pinchpan.NewControllerWithRecognizer(rec, view)
	s.ctrl.OnPan(s.recordGesture)
	s.ctrl.OnZoom(s.recordGesture)
	s.ctrl.OnStateChange(func(from, to pinchpan.StateKind) {
		s.report.Transitions = append(s.report.Transitions, TransitionRecord{Step: s.step, From: from.String(), To: to.String()})
		s.report.lines = append(s.report.lines, reportLine{
			text:       fmt.Sprintf("[%d] %s -> %s", s.step, from, to),
			transition: true,
		})
	})
	return s, nil
}

func (s *session) recordGesture(g pinchpan.GestureEvent) {
	r := GestureRecord{Step: s.step, Type: g.Type.String()}
	var line string
	switch g.Type {
	case pinchpan.GesturePan:
		r.DX, r.DY = g.Pan.X, g.Pan.Y
		line = fmt.Sprintf("[%d] pan dx=%.3f dy=%.3f", s.step, g.Pan.X, g.Pan.Y)
	case pinchpan.GestureZoom:
		r.Delta, r.CenterX, r.CenterY = g.ZoomDelta, g.Center.X, g.Center.Y
		line = fmt.Sprintf("[%d] zoom delta=%.3f center=(%.3f,%.3f)", s.step, g.ZoomDelta, g.Center.X, g.Center.Y)
	}
	s.report.Gestures = append(s.report.Gestures, r)
	s.report.lines = append(s.report.lines, reportLine{text: line})
}

func (s *session) finish(steps int) *Report {
	s.report.Steps = steps
	s.report.Viewport = ViewportRecord{X: s.view.X, Y: s.view.Y, Zoom: s.view.Zoom}
	return s.report
}

// writeText prints the report. Transition lines appear only when verbose.
func (r *Report) writeText(w io.Writer, verbose bool) {
	fmt.Fprintf(w, "%s: %d steps\n", r.Name, r.Steps)
	for _, line := range r.lines {
		if line.transition && !verbose {
			continue
		}
		fmt.Fprintln(w, line.text)
	}
	pans, zooms := 0, 0
	for _, g := range r.Gestures {
		if g.Type == pinchpan.GesturePan.String() {
			pans++
		} else {
			zooms++
		}
	}
	fmt.Fprintf(w, "gestures: %d pan, %d zoom\n", pans, zooms)
	fmt.Fprintf(w, "viewport: x=%.3f y=%.3f zoom=%.3f\n", r.Viewport.X, r.Viewport.Y, r.Viewport.Zoom)
}
