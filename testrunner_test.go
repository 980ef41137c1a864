package pinchpan

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "down", "id": 1, "x": 0, "y": 0},
			{"action": "pinch", "x": 100, "y": 100, "fromDist": 40, "toDist": 120, "frames": 4, "ease": "inOutQuad"},
			{"action": "wait", "frames": 3},
			{"action": "pan", "fromX": 0, "fromY": 0, "toX": 50, "toY": 0, "spread": 60, "frames": 3}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "down" || runner.steps[0].ID != 1 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].FromDist != 40 || runner.steps[1].ToDist != 120 || runner.steps[1].Ease != "inOutQuad" {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if !errors.Is(err, ErrNoSteps) {
		t.Errorf("expected ErrNoSteps, got %v", err)
	}
}

func TestLoadTestScript_UnknownActionAndEase(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "tap"}]}`))
	if err == nil || !strings.Contains(err.Error(), `unknown action "tap"`) {
		t.Errorf("unexpected error: %v", err)
	}
	_, err = LoadTestScript([]byte(`{"steps": [{"action": "pinch", "ease": "bounce"}]}`))
	if err == nil || !strings.Contains(err.Error(), `unknown ease "bounce"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunnerManualPinch(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "down", "id": 1, "x": 0, "y": 0},
		{"action": "down", "id": 2, "x": 40, "y": 0},
		{"action": "move", "id": 2, "x": 80, "y": 0},
		{"action": "move", "id": 2, "x": 80, "y": 0},
		{"action": "up", "id": 2, "x": 80, "y": 0}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	c := NewController(nil)

	// One step per frame.
	for i := 0; i < 5; i++ {
		runner.Step(c)
	}
	if !runner.Done() {
		t.Fatal("runner should be done after 5 frames")
	}
	got := runner.Gestures()
	if len(got) != 2 {
		t.Fatalf("recorded %d gestures, want 2", len(got))
	}
	if got[0].Pan != (Vec2{-20, 0}) || !approxEqual(got[1].ZoomDelta, 1, epsilon) {
		t.Errorf("gestures = %+v", got)
	}
}

func TestRunnerWaitFrames(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "down", "id": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	c := NewController(nil)

	for i := 0; i < 3; i++ {
		runner.Step(c)
		if c.Recognizer().ActiveCount() != 0 {
			t.Fatalf("frame %d: down delivered during wait", i)
		}
	}
	runner.Step(c)
	if c.Recognizer().ActiveCount() != 1 {
		t.Error("down should be delivered on the frame after the wait")
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerPinchScript(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "pinch", "x": 200, "y": 200, "fromDist": 50, "toDist": 150, "frames": 7}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	c := NewController(nil)
	gestures := runner.Run(c)

	if !runner.Done() {
		t.Fatal("Run should finish the script")
	}
	if len(gestures) == 0 || len(gestures)%2 != 0 {
		t.Fatalf("recorded %d gestures, want a non-empty even count", len(gestures))
	}
	total := 0.0
	for i, g := range gestures {
		want := GesturePan
		if i%2 == 1 {
			want = GestureZoom
		}
		if g.Type != want {
			t.Errorf("gesture %d = %v, want %v", i, g.Type, want)
		}
		total += g.ZoomDelta
	}
	if !approxEqual(1+total, 3, 1e-3) {
		t.Errorf("cumulative zoom = %v, want 3", 1+total)
	}
	if c.Recognizer().State().Kind != StateIdle {
		t.Errorf("state = %v, want idle", c.Recognizer().State().Kind)
	}
}
