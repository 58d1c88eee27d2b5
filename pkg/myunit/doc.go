// Package myunit is a minimal unit-testing facility built on plain functions
// and return values.
//
// Tests are ordinary functions that take the run's Counters and return an
// error. Assertions increment the assertion counter, and on failure return a
// *Diagnostic that the test returns immediately. A group is a function of the
// same shape that calls RunTest for each of its tests and returns the first
// failure. The Runner executes groups in order and stops at the first failing
// group.
//
// # Writing Tests
//
//	func testBar(c *myunit.Counters) error {
//	    bar := 4
//	    if err := myunit.Int(c, next(&bar), myunit.Eq, 4); err != nil {
//	        return err
//	    }
//	    return myunit.Assert(c, bar == 5)
//	}
//
//	func passingTests(c *myunit.Counters) error {
//	    if err := myunit.RunTest(c, testFoo); err != nil {
//	        return err
//	    }
//	    return myunit.RunTest(c, testBar)
//	}
//
//	func main() {
//	    myunit.Main(
//	        myunit.NewGroup(passingTests),
//	        myunit.NewGroup(failingTests),
//	    )
//	}
//
// # Output
//
// Each group writes one line:
//
//	demo.go/passing_tests -> 4 PASSED
//	demo.go/failing_tests -> FAIL
//	demo.go:57:testFail() Assertion 'false' failed
//
// When every group passes the run ends with:
//
//	8 assertions in 4 tests
//	ALL TESTS PASSED
//
// # Diagnostics
//
// A Diagnostic names the file, line and function of the failing assertion
// and quotes its Go source. Comparisons also report the evaluated operands:
//
//	bar_test.go:12:testBar() Comparison 'next(&bar) == 3' failed, !(4 == 3)
//
// The source text is read from the caller's file at failure time. Binaries
// running without their sources fall back to the evaluated values.
package myunit
