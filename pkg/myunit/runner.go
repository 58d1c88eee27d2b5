package myunit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/fatih/color"
)

// Func is the shape shared by test functions and group functions.
// A nil return is success; any error is the first failure.
type Func func(c *Counters) error

// ErrNilFunc is returned when a nil test or group function is run.
var ErrNilFunc = errors.New("myunit: nil function")

// RunTest counts and runs a single test, returning its failure unchanged.
//
// Group functions call RunTest for each test and return the first non-nil
// result:
//
//	if err := myunit.RunTest(c, testFoo); err != nil {
//	    return err
//	}
func RunTest(c *Counters, test Func) error {
	c.countTest()
	if test == nil {
		return ErrNilFunc
	}
	return outcome(test(c))
}

// outcome normalizes a typed nil *Diagnostic to a nil error.
func outcome(err error) error {
	if d, ok := err.(*Diagnostic); ok && d == nil {
		return nil
	}
	return err
}

// Group is a named group function.
type Group struct {
	// Name identifies the group in the report.
	Name string

	// Source is printed before the name, normally the base name of the file
	// defining the group function.
	Source string

	Func Func
}

// NewGroup builds a Group named after fn itself.
func NewGroup(fn Func) Group {
	name, source := funcIdentity(fn)
	return Group{Name: name, Source: source, Func: fn}
}

// NamedGroup builds a Group with an explicit name. Source is still derived
// from fn.
func NamedGroup(name string, fn Func) Group {
	_, source := funcIdentity(fn)
	return Group{Name: name, Source: source, Func: fn}
}

// String renders the group as "<source>/<name>".
func (g Group) String() string {
	if g.Source == "" {
		return g.Name
	}
	return g.Source + "/" + g.Name
}

func funcIdentity(fn Func) (name, source string) {
	if fn == nil {
		return "", ""
	}
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "", ""
	}
	file, _ := f.FileLine(f.Entry())
	return shortFuncName(f.Name()), filepath.Base(file)
}

// GroupFailure is returned by the Runner when a group fails.
// It wraps the failing test's error, normally a *Diagnostic.
type GroupFailure struct {
	Group Group
	Err   error
}

// Error implements the error interface.
func (e *GroupFailure) Error() string {
	return fmt.Sprintf("%s -> FAIL: %v", e.Group, e.Err)
}

func (e *GroupFailure) Unwrap() error {
	return e.Err
}

// Runner executes groups and writes the report.
type Runner struct {
	out      io.Writer
	counters *Counters
	logger   *slog.Logger

	pass *color.Color
	fail *color.Color
}

// Option configures a Runner.
type Option func(*Runner)

// WithCounters makes the Runner accumulate into c instead of fresh counters.
func WithCounters(c *Counters) Option {
	return func(r *Runner) {
		r.counters = c
	}
}

// WithLogger sets the structured logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithColor enables or disables ANSI color on group result lines.
// Color is off by default.
func WithColor(enabled bool) Option {
	return func(r *Runner) {
		if enabled {
			r.pass.EnableColor()
			r.fail.EnableColor()
		} else {
			r.pass.DisableColor()
			r.fail.DisableColor()
		}
	}
}

// NewRunner creates a Runner writing its report to out.
func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:      out,
		counters: NewCounters(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		pass:     color.New(color.FgGreen),
		fail:     color.New(color.FgRed, color.Bold),
	}
	r.pass.DisableColor()
	r.fail.DisableColor()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Counters returns the counters the Runner accumulates into.
func (r *Runner) Counters() *Counters {
	return r.counters
}

// RunGroup runs one group and writes its result line.
//
// On success it writes "<source>/<name> -> <N> PASSED", N being the number
// of tests the group ran, and returns nil. On failure it writes
// "<source>/<name> -> FAIL" followed by the failure message and returns a
// *GroupFailure.
func (r *Runner) RunGroup(g Group) error {
	r.logger.Debug("running group", "group", g.String())

	before := r.counters.Tests()
	err := ErrNilFunc
	if g.Func != nil {
		err = outcome(g.Func(r.counters))
	}

	if err != nil {
		r.fail.Fprintf(r.out, "%s -> FAIL", g)
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, err.Error())
		r.logger.Info("group failed", "group", g.String(), "error", err)
		return &GroupFailure{Group: g, Err: err}
	}

	ran := r.counters.Tests() - before
	r.pass.Fprintf(r.out, "%s -> %d PASSED", g, ran)
	fmt.Fprintln(r.out)
	r.logger.Info("group passed", "group", g.String(), "tests", ran)
	return nil
}

// Run runs groups in order and stops at the first failure, returning its
// *GroupFailure. When every group passes it writes the assertion and test
// totals followed by "ALL TESTS PASSED".
func (r *Runner) Run(groups ...Group) error {
	for _, g := range groups {
		if err := r.RunGroup(g); err != nil {
			return err
		}
	}

	fmt.Fprintln(r.out, r.counters.Summary())
	fmt.Fprintln(r.out, "ALL TESTS PASSED")
	r.logger.Info("run complete",
		"groups", len(groups),
		"assertions", r.counters.Assertions(),
		"tests", r.counters.Tests(),
	)
	return nil
}

// exit is replaced in tests.
var exit = os.Exit

// Main runs groups with a fresh Runner on stdout and exits the process with
// status 1 on the first failing group, 0 otherwise.
func Main(groups ...Group) {
	if err := NewRunner(os.Stdout).Run(groups...); err != nil {
		exit(1)
		return
	}
	exit(0)
}
