// Package demo is the example suite shipped with the myunit command.
//
// It exercises every assertion primitive. The passing_tests group passes;
// failing_tests fails on purpose so the failure path of the report can be
// seen end to end.
package demo

import (
	"github.com/roach88/myunit/internal/testutil"
	"github.com/roach88/myunit/pkg/myunit"
)

func testFoo(c *myunit.Counters) error {
	foo := 7
	if err := myunit.Assert(c, foo == 7); err != nil {
		return err
	}
	return nil
}

func testBar(c *myunit.Counters) error {
	bar := 4
	if err := myunit.Int(c, testutil.PostInc(&bar), myunit.Eq, 4); err != nil {
		return err
	}
	if err := myunit.Assert(c, bar == 5); err != nil {
		return err
	}
	return nil
}

func testBaz(c *myunit.Counters) error {
	baz := "hello"
	if err := myunit.Str(c, baz, myunit.Eq, "hello"); err != nil {
		return err
	}
	if err := myunit.Str(c, baz, myunit.Ne, "hello, dick"); err != nil {
		return err
	}
	if err := myunit.Str(c, baz, myunit.Lt, "zzzzzzzzzzz"); err != nil {
		return err
	}
	if err := myunit.Str(c, baz, myunit.Gt, "aaaaaaaaaaa"); err != nil {
		return err
	}
	return nil
}

func testDouble(c *myunit.Counters) error {
	if err := myunit.Float(c, 3.549, myunit.Eq, 3.549); err != nil {
		return err
	}
	return nil
}

func testFail(c *myunit.Counters) error {
	if err := myunit.Assert(c, false); err != nil {
		return err
	}
	return nil
}

func passingTests(c *myunit.Counters) error {
	if err := myunit.RunTest(c, testFoo); err != nil {
		return err
	}
	if err := myunit.RunTest(c, testBar); err != nil {
		return err
	}
	if err := myunit.RunTest(c, testBaz); err != nil {
		return err
	}
	if err := myunit.RunTest(c, testDouble); err != nil {
		return err
	}
	return nil
}

func failingTests(c *myunit.Counters) error {
	if err := myunit.RunTest(c, testFail); err != nil {
		return err
	}
	return nil
}

// Groups returns the suite's groups in run order.
func Groups() []myunit.Group {
	return []myunit.Group{
		myunit.NamedGroup("passing_tests", passingTests),
		myunit.NamedGroup("failing_tests", failingTests),
	}
}

// Lookup returns the group with the given name.
func Lookup(name string) (myunit.Group, bool) {
	for _, g := range Groups() {
		if g.Name == name {
			return g, true
		}
	}
	return myunit.Group{}, false
}
