package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Exit codes for pinchreplay.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // errors raised outside a command, e.g. bad arguments
	ExitCommandError = 2 // unreadable trace or script, bad config
)

// Error codes carried in JSON error responses.
const (
	ErrCodeNotFound = "E_NOT_FOUND"
	ErrCodeParse    = "E_PARSE"
	ErrCodeConfig   = "E_CONFIG"
)

// ExitError is a command failure with the exit code main should use.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func commandError(message string, err error) *ExitError {
	return &ExitError{Code: ExitCommandError, Message: message, Err: err}
}

// GetExitCode maps an Execute error to a process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// CLIResponse is the JSON envelope for --format json.
type CLIResponse struct {
	Status string         `json:"status"` // "ok" or "error"
	Data   *Report        `json:"data,omitempty"`
	Error  *responseError `json:"error,omitempty"`
}

type responseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// reporter writes a command's Report or failure in the selected format.
// Diagnostics go to diag so they never mix into JSON on out.
type reporter struct {
	json    bool
	verbose bool
	out     io.Writer
	diag    io.Writer
}

func newReporter(opts *RootOptions, cmd *cobra.Command) *reporter {
	return &reporter{
		json:    opts.Format == "json",
		verbose: opts.Verbose,
		out:     cmd.OutOrStdout(),
		diag:    cmd.ErrOrStderr(),
	}
}

// report prints r as text, with transitions when verbose, or as an "ok"
// envelope.
func (p *reporter) report(r *Report) error {
	if p.json {
		return p.encode(CLIResponse{Status: "ok", Data: r})
	}
	r.writeText(p.out, p.verbose)
	return nil
}

// fail emits an "error" envelope in JSON mode and returns the command
// error. In text mode main prints the error.
func (p *reporter) fail(code, message string, err error) error {
	exitErr := commandError(message, err)
	if p.json {
		if encErr := p.encode(CLIResponse{
			Status: "error",
			Error:  &responseError{Code: code, Message: exitErr.Error()},
		}); encErr != nil {
			return encErr
		}
	}
	return exitErr
}

func (p *reporter) logf(format string, args ...any) {
	if p.verbose {
		fmt.Fprintf(p.diag, format+"\n", args...)
	}
}

func (p *reporter) encode(resp CLIResponse) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
