package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/roach88/myunit/pkg/myunit"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // All groups passed
	ExitFailure      = 1 // A group failed
	ExitCommandError = 2 // Command error (unknown group, bad config, bad flag, etc.)
)

// ExitError attaches a process exit status to an error returned by a
// command. Reported marks a failure the runner has already written to
// stdout, which Execute then leaves off stderr.
type ExitError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// commandErrorf reports a usage or setup problem with ExitCommandError.
func commandErrorf(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitCommandError, Err: fmt.Errorf(format, args...)}
}

// groupFailed exits with ExitFailure for a group the runner has reported.
func groupFailed(gf *myunit.GroupFailure) *ExitError {
	return &ExitError{Code: ExitFailure, Err: gf, Reported: true}
}

// alreadyReported reports whether err was written out by the runner.
func alreadyReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// GetExitCode extracts the exit code from an error.
// Returns ExitCommandError (2) if the error is not an ExitError: anything
// that is not a reported group failure is a usage or setup problem.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// Color modes for the --color flag and the color config key.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// ValidColorModes defines the allowed color modes.
var ValidColorModes = []string{ColorAuto, ColorOn, ColorOff}

// isValidColorMode checks if the mode is one of the allowed values.
func isValidColorMode(mode string) bool {
	for _, m := range ValidColorModes {
		if m == mode {
			return true
		}
	}
	return false
}

// colorEnabled resolves a color mode for writer w. In auto mode color is
// used only when w is a terminal and the environment allows it (NO_COLOR,
// TERM=dumb).
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !color.NoColor && term.IsTerminal(int(f.Fd()))
}
