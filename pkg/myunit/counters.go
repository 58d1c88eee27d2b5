package myunit

import (
	"fmt"
	"sync/atomic"
)

// Counters tracks how many assertions and tests a run has attempted.
//
// A Counters value is owned by one run and passed by pointer to every test
// and group. Both counts start at zero and only ever increase: the
// assertion primitives increment Assertions and RunTest increments Tests,
// once per attempt regardless of outcome.
//
// Thread-safety: increments are atomic, so a Counters shared across
// goroutines still counts every attempt exactly once.
type Counters struct {
	assertions atomic.Int64
	tests      atomic.Int64
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters {
	return &Counters{}
}

// Assertions returns the number of assertions attempted so far.
func (c *Counters) Assertions() int64 {
	return c.assertions.Load()
}

// Tests returns the number of tests attempted so far.
func (c *Counters) Tests() int64 {
	return c.tests.Load()
}

// Summary renders the counts as "<assertions> assertions in <tests> tests".
func (c *Counters) Summary() string {
	return fmt.Sprintf("%d assertions in %d tests", c.Assertions(), c.Tests())
}

func (c *Counters) countAssertion() {
	c.assertions.Add(1)
}

func (c *Counters) countTest() {
	c.tests.Add(1)
}
