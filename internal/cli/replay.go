package cli

import (
	"github.com/spf13/cobra"
)

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <trace>",
		Short: "Replay a recorded pointer trace",
		Long: `Replay a YAML or JSON trace of host events through the recognizer and
print the gestures each event produced, tagged with its step index.

Events with type "other" are delivered as non-pointer host events.

Exit codes:
  0 - Replay completed
  2 - Command error (trace not found, malformed trace, bad config)

Examples:
  pinchreplay replay testdata/traces/pinch.yaml
  pinchreplay replay -v --config tuning.toml trace.yaml
  pinchreplay replay --format json trace.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runReplay(opts *RootOptions, cmd *cobra.Command, path string) error {
	out := newReporter(opts, cmd)

	conf, err := LoadConfig(opts.Config)
	if err != nil {
		return out.fail(ErrCodeConfig, "failed to load config", err)
	}
	trace, err := LoadTrace(path)
	if err != nil {
		return out.fail(ErrCodeParse, "failed to load trace", err)
	}
	out.logf("loaded %d events from %s (threshold %.1f, gain %.2f)",
		len(trace.Events), path, conf.Threshold, conf.Gain)

	s, err := newSession(trace.Name, conf)
	if err != nil {
		return out.fail(ErrCodeConfig, "invalid config", err)
	}
	for i, ev := range trace.Events {
		s.step = i
		s.ctrl.Event(ev.Value())
	}
	report := s.finish(len(trace.Events))

	return out.report(report)
}
