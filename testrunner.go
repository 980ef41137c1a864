package pinchpan

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
)

// ErrNoSteps is returned by LoadTestScript for a script with no steps.
var ErrNoSteps = errors.New("no steps")

// testStep represents a single action in a test script.
type testStep struct {
	Action   string  `json:"action"`
	ID       int     `json:"id,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	Spread   float64 `json:"spread,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Ease     string  `json:"ease,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var easeByName = map[string]ease.TweenFunc{
	"":           ease.Linear,
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inOutCubic": ease.InOutCubic,
}

var knownActions = map[string]bool{
	"down": true, "move": true, "up": true, "leave": true,
	"pinch": true, "pan": true, "wait": true,
}

// TestRunner sequences injected pointer input across frames for automated
// gesture testing, recording every gesture the controller emits.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	inject    *Injector
	gestures  []GestureEvent
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to drive a Controller via Step.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrNoSteps)
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if _, ok := easeByName[st.Ease]; !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown ease %q", i, st.Ease)
		}
	}
	return &TestRunner{steps: script.Steps, inject: NewInjector()}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Gestures returns every gesture recorded so far, in emission order.
func (r *TestRunner) Gestures() []GestureEvent {
	return r.gestures
}

// Run steps the runner until it is done and returns the recorded gestures.
func (r *TestRunner) Run(c *Controller) []GestureEvent {
	for !r.done {
		r.Step(c)
	}
	return r.gestures
}

// Step advances the runner by one frame, delivering at most one frame of
// injected events to c.
func (r *TestRunner) Step(c *Controller) {
	if r.done {
		return
	}
	// Drain pending injections before advancing.
	if r.feed(c) {
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	id := PointerID(st.ID)

	switch st.Action {
	case "down":
		r.inject.InjectDown(id, st.X, st.Y)
	case "move":
		r.inject.InjectMove(id, st.X, st.Y)
	case "up":
		r.inject.InjectUp(id, st.X, st.Y)
	case "leave":
		r.inject.InjectLeave(id, st.X, st.Y)
	case "pinch":
		r.inject.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, st.Frames, easeByName[st.Ease])
	case "pan":
		r.inject.InjectPan(st.FromX, st.FromY, st.ToX, st.ToY, st.Spread, st.Frames, easeByName[st.Ease])
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	r.feed(c)
	r.checkDone()
}

func (r *TestRunner) feed(c *Controller) bool {
	out, ok := r.inject.Feed(c)
	r.gestures = append(r.gestures, out...)
	return ok
}

func (r *TestRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.inject.Pending() == 0 {
		r.done = true
	}
}
