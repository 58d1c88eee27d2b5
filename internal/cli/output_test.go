package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/myunit/pkg/myunit"
)

func TestCommandErrorf(t *testing.T) {
	inner := errors.New("boom")
	err := commandErrorf("invalid config: %w", inner)

	assert.Equal(t, ExitCommandError, err.Code)
	assert.Equal(t, "invalid config: boom", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.False(t, alreadyReported(err))
}

func TestGroupFailed(t *testing.T) {
	gf := &myunit.GroupFailure{
		Group: myunit.Group{Name: "g", Source: "demo.go"},
		Err:   errors.New("boom"),
	}
	err := groupFailed(gf)

	assert.Equal(t, ExitFailure, err.Code)
	assert.Equal(t, gf.Error(), err.Error())
	assert.True(t, alreadyReported(err))
	assert.True(t, alreadyReported(fmt.Errorf("run: %w", err)))

	var got *myunit.GroupFailure
	require.ErrorAs(t, err, &got)
	assert.Same(t, gf, got)
}

func TestGetExitCode(t *testing.T) {
	gf := &myunit.GroupFailure{Err: errors.New("x")}
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"group failed", groupFailed(gf), ExitFailure},
		{"command error", commandErrorf("unknown group: %s", "x"), ExitCommandError},
		{"wrapped", fmt.Errorf("outer: %w", groupFailed(gf)), ExitFailure},
		{"plain error", errors.New("unknown flag"), ExitCommandError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestColorEnabled(t *testing.T) {
	buf := &bytes.Buffer{}

	assert.True(t, colorEnabled(ColorOn, buf))
	assert.False(t, colorEnabled(ColorOff, buf))
	// A buffer is never a terminal.
	assert.False(t, colorEnabled(ColorAuto, buf))
}

func TestIsValidColorMode(t *testing.T) {
	for _, m := range ValidColorModes {
		assert.True(t, isValidColorMode(m), m)
	}
	assert.False(t, isValidColorMode("always"))
	assert.False(t, isValidColorMode(""))
}
