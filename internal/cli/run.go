package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/pinchpan"
)

// maxFrames bounds a script run.
const maxFrames = 100000

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script.json>",
		Short: "Run a gesture test script headlessly",
		Long: `Run a JSON gesture script one frame at a time and print the gestures
emitted, tagged with the frame that produced them.

Exit codes:
  0 - Script completed
  2 - Command error (script not found, malformed script, bad config)

Examples:
  pinchreplay run testdata/scripts/zoom.json
  pinchreplay run --format json zoom.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runScript(opts *RootOptions, cmd *cobra.Command, path string) error {
	out := newReporter(opts, cmd)

	conf, err := LoadConfig(opts.Config)
	if err != nil {
		return out.fail(ErrCodeConfig, "failed to load config", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return out.fail(ErrCodeNotFound, "failed to read script", err)
	}
	runner, err := pinchpan.LoadTestScript(data)
	if err != nil {
		return out.fail(ErrCodeParse, "failed to load script", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := newSession(name, conf)
	if err != nil {
		return out.fail(ErrCodeConfig, "invalid config", err)
	}
	frame := 0
	for ; !runner.Done() && frame < maxFrames; frame++ {
		s.step = frame
		runner.Step(s.ctrl)
	}
	out.logf("script finished after %d frames", frame)
	report := s.finish(frame)

	return out.report(report)
}
