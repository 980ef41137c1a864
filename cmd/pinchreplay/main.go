// Command pinchreplay replays pointer traces and gesture scripts through
// the pinch/pan recognizer.
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/pinchpan/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
