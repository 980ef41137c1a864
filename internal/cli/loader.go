package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/pinchpan"
)

// Trace is a recorded sequence of host events. JSON traces parse too,
// since JSON is valid YAML.
type Trace struct {
	Name   string       `yaml:"name"`
	Events []TraceEvent `yaml:"events"`
}

// TraceEvent is one recorded host event.
type TraceEvent struct {
	Type  string  `yaml:"type"` // down|move|up|enter|leave|other
	ID    int     `yaml:"id,omitempty"`
	X     float64 `yaml:"x,omitempty"`
	Y     float64 `yaml:"y,omitempty"`
	Label string  `yaml:"label,omitempty"` // for "other" events
}

// HostEvent is a non-pointer event from a trace. It passes through the
// controller untouched.
type HostEvent struct {
	Label string
}

var pointerTypes = map[string]pinchpan.PointerEventType{
	"down":  pinchpan.PointerDown,
	"move":  pinchpan.PointerMove,
	"up":    pinchpan.PointerUp,
	"enter": pinchpan.PointerEnter,
	"leave": pinchpan.PointerLeave,
}

// LoadTrace reads and parses a trace file. Unknown fields and event types
// are rejected. A trace without a name is named after its file.
func LoadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}

	var trace Trace
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&trace); err != nil {
		return nil, fmt.Errorf("failed to parse trace: %w", err)
	}
	for i, ev := range trace.Events {
		if _, ok := pointerTypes[ev.Type]; !ok && ev.Type != "other" {
			return nil, fmt.Errorf("event %d: unknown type %q", i, ev.Type)
		}
	}
	if trace.Name == "" {
		base := filepath.Base(path)
		trace.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &trace, nil
}

// Value converts a trace entry into the value fed to a Controller.
func (e TraceEvent) Value() any {
	if t, ok := pointerTypes[e.Type]; ok {
		return pinchpan.PointerEvent{ID: pinchpan.PointerID(e.ID), Type: t, X: e.X, Y: e.Y}
	}
	return HostEvent{Label: e.Label}
}
