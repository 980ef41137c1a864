package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRun(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRunCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunScript(t *testing.T) {
	out, err := executeRun(t, &RootOptions{Format: "json"}, "testdata/scripts/zoom.json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "zoom", resp.Data.Name)
	// Down, four moves, up.
	assert.Equal(t, 6, resp.Data.Steps)
	// Each frame moves both fingers. Finger one's move on frame 2 enters
	// the pinch and finger two's emits; frames 3 and 4 emit for both.
	require.Len(t, resp.Data.Gestures, 10)
	assert.Equal(t, 2, resp.Data.Gestures[0].Step)
	assert.Equal(t, "pan", resp.Data.Gestures[0].Type)
	assert.Equal(t, 4, resp.Data.Gestures[9].Step)
	assert.Equal(t, "zoom", resp.Data.Gestures[9].Type)
	// The pinch is centered on the screen, so only the zoom changes.
	assert.InDelta(t, 5.0, resp.Data.Viewport.Zoom, 1e-3)
	assert.InDelta(t, 0.0, resp.Data.Viewport.X, 1e-3)
}

func TestRunScriptText(t *testing.T) {
	out, err := executeRun(t, &RootOptions{Format: "text"}, "testdata/scripts/zoom.json")
	require.NoError(t, err)
	assert.Contains(t, out, "zoom: 6 steps")
	assert.Contains(t, out, "gestures: 5 pan, 5 zoom")
	assert.Contains(t, out, "zoom=5.000")
}

func TestRunScriptClampsZoom(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "tuning.toml")
	require.NoError(t, os.WriteFile(conf, []byte("max_zoom = 3.0\n"), 0o644))

	out, err := executeRun(t, &RootOptions{Format: "text", Config: conf}, "testdata/scripts/zoom.json")
	require.NoError(t, err)
	assert.Contains(t, out, "zoom=3.000")
}

func TestRunScriptInvalid(t *testing.T) {
	script := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(script, []byte(`{"steps": []}`), 0o644))

	_, err := executeRun(t, &RootOptions{Format: "text"}, script)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "no steps")
}

func TestRunScriptMissing(t *testing.T) {
	_, err := executeRun(t, &RootOptions{Format: "text"}, "testdata/scripts/missing.json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
