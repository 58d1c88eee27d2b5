package myunit

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passOne(c *Counters) error {
	return Assert(c, true)
}

func failOne(c *Counters) error {
	return Assert(c, 1+1 == 3)
}

func twoPassing(c *Counters) error {
	if err := RunTest(c, passOne); err != nil {
		return err
	}
	return RunTest(c, passOne)
}

func failsSecond(c *Counters) error {
	if err := RunTest(c, passOne); err != nil {
		return err
	}
	if err := RunTest(c, failOne); err != nil {
		return err
	}
	return RunTest(c, passOne)
}

func TestRunTest_Pass(t *testing.T) {
	c := NewCounters()

	require.NoError(t, RunTest(c, passOne))
	assert.Equal(t, int64(1), c.Tests())
	assert.Equal(t, int64(1), c.Assertions())
}

func TestRunTest_PropagatesDiagnosticUnchanged(t *testing.T) {
	c := NewCounters()

	err := RunTest(c, failOne)
	require.Error(t, err)

	d, ok := err.(*Diagnostic)
	require.True(t, ok, "expected *Diagnostic, got %T", err)
	assert.Equal(t, "failOne", d.Func)
	assert.Equal(t, "1+1 == 3", d.Expr)
	assert.Equal(t, int64(1), c.Tests())
}

func TestRunTest_ArbitraryError(t *testing.T) {
	c := NewCounters()
	boom := errors.New("boom")

	err := RunTest(c, func(*Counters) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(1), c.Tests())
}

func TestRunTest_TypedNilDiagnosticIsSuccess(t *testing.T) {
	c := NewCounters()

	err := RunTest(c, func(*Counters) error {
		var d *Diagnostic
		return d
	})
	assert.NoError(t, err)
}

func TestRunTest_NilFunc(t *testing.T) {
	c := NewCounters()

	assert.ErrorIs(t, RunTest(c, nil), ErrNilFunc)
	assert.Equal(t, int64(1), c.Tests())
}

func TestNewGroup_DerivesIdentity(t *testing.T) {
	g := NewGroup(twoPassing)
	assert.Equal(t, "twoPassing", g.Name)
	assert.Equal(t, "runner_test.go", g.Source)
	assert.Equal(t, "runner_test.go/twoPassing", g.String())

	g = NamedGroup("two_passing", twoPassing)
	assert.Equal(t, "two_passing", g.Name)
	assert.Equal(t, "runner_test.go", g.Source)

	assert.Equal(t, "bare", Group{Name: "bare"}.String())
}

func TestRunGroup_Pass(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out)

	require.NoError(t, r.RunGroup(NamedGroup("two_passing", twoPassing)))
	assert.Equal(t, "runner_test.go/two_passing -> 2 PASSED\n", out.String())
}

func TestRunGroup_ReportsDeltaOnly(t *testing.T) {
	var out bytes.Buffer
	c := NewCounters()
	_ = RunTest(c, passOne)
	_ = RunTest(c, passOne)
	_ = RunTest(c, passOne)

	r := NewRunner(&out, WithCounters(c))
	require.NoError(t, r.RunGroup(NamedGroup("g", twoPassing)))
	assert.Equal(t, "runner_test.go/g -> 2 PASSED\n", out.String())
	assert.Equal(t, int64(5), c.Tests())
}

func TestRunGroup_Fail(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out)

	err := r.RunGroup(NamedGroup("fails_second", failsSecond))
	require.Error(t, err)

	var gf *GroupFailure
	require.ErrorAs(t, err, &gf)
	assert.Equal(t, "fails_second", gf.Group.Name)

	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "failOne", d.Func)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "runner_test.go/fails_second -> FAIL", lines[0])
	assert.Equal(t, d.Error(), lines[1])

	// The third test never ran.
	assert.Equal(t, int64(2), r.Counters().Tests())
	assert.Equal(t, int64(2), r.Counters().Assertions())
}

func TestRunGroup_NilFunc(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out)

	err := r.RunGroup(Group{Name: "empty"})
	assert.ErrorIs(t, err, ErrNilFunc)
	assert.Equal(t, "empty -> FAIL\nmyunit: nil function\n", out.String())
}

func TestRun_AllPass(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out)

	err := r.Run(
		NamedGroup("first", twoPassing),
		NamedGroup("second", twoPassing),
	)
	require.NoError(t, err)

	want := "runner_test.go/first -> 2 PASSED\n" +
		"runner_test.go/second -> 2 PASSED\n" +
		"4 assertions in 4 tests\n" +
		"ALL TESTS PASSED\n"
	assert.Equal(t, want, out.String())
}

func TestRun_StopsAtFirstFailingGroup(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out)

	ranLast := false
	last := func(c *Counters) error {
		ranLast = true
		return nil
	}

	err := r.Run(
		NamedGroup("first", twoPassing),
		NamedGroup("broken", failsSecond),
		NamedGroup("last", last),
	)
	require.Error(t, err)
	assert.False(t, ranLast)
	assert.Contains(t, out.String(), "runner_test.go/broken -> FAIL\n")
	assert.NotContains(t, out.String(), "ALL TESTS PASSED")
	assert.NotContains(t, out.String(), "assertions in")
	assert.Equal(t, "runner_test.go/broken -> FAIL: "+fmt.Sprint(errors.Unwrap(err)), err.Error())
}

func TestRun_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewRunner(&out).Run())
	assert.Equal(t, "0 assertions in 0 tests\nALL TESTS PASSED\n", out.String())
}

func TestRunner_Color(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, WithColor(true))

	require.NoError(t, r.RunGroup(NamedGroup("g", twoPassing)))
	assert.Contains(t, out.String(), "\x1b[32m")
	assert.Contains(t, out.String(), "runner_test.go/g -> 2 PASSED")

	out.Reset()
	r = NewRunner(&out, WithColor(false))
	require.NoError(t, r.RunGroup(NamedGroup("g", twoPassing)))
	assert.Equal(t, "runner_test.go/g -> 2 PASSED\n", out.String())
}

func TestRunner_ColorEndsBeforeNewline(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, WithColor(true))

	require.NoError(t, r.RunGroup(NamedGroup("ok", twoPassing)))
	assert.True(t, strings.HasSuffix(out.String(), "PASSED\x1b[0m\n"), "%q", out.String())

	out.Reset()
	err := r.RunGroup(NamedGroup("bad", failsSecond))
	require.Error(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "FAIL\x1b[0m"), "%q", lines[0])
	assert.Equal(t, errors.Unwrap(err).Error(), lines[1])
}

func TestRunner_Logs(t *testing.T) {
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewRunner(&out, WithLogger(logger))

	_ = r.Run(NamedGroup("ok", twoPassing), NamedGroup("bad", failsSecond))

	assert.Contains(t, logs.String(), `msg="running group" group=runner_test.go/ok`)
	assert.Contains(t, logs.String(), `msg="group passed" group=runner_test.go/ok tests=2`)
	assert.Contains(t, logs.String(), `msg="group failed" group=runner_test.go/bad`)
	assert.NotContains(t, logs.String(), "run complete")
}

func TestMainExitStatus(t *testing.T) {
	var code int
	orig := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = orig })

	Main(NamedGroup("g", twoPassing))
	assert.Equal(t, 0, code)

	Main(NamedGroup("g", failsSecond))
	assert.Equal(t, 1, code)
}
