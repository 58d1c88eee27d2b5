package myunit

import (
	"errors"
	"fmt"
)

// Kind distinguishes boolean assertions from comparisons.
type Kind int

const (
	// KindAssertion is a failed Assert.
	KindAssertion Kind = iota + 1

	// KindComparison is a failed Int, Str or Float comparison.
	KindComparison
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindAssertion:
		return "assertion"
	case KindComparison:
		return "comparison"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Diagnostic records a single assertion failure.
//
// It is created by the assertion primitives at the moment of failure and
// returned as the error of the failing test. A Diagnostic is never modified
// after it has been returned.
type Diagnostic struct {
	File string // base name of the source file
	Line int
	Func string // short name of the enclosing function

	Kind Kind

	// Expr is the source text of the asserted expression. For comparisons it
	// is rendered as "<X> <op> <Y>".
	Expr string

	// Op, X and Y are set for comparisons only. X and Y hold the evaluated
	// operands rendered for their type.
	Op Op
	X  string
	Y  string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	loc := fmt.Sprintf("%s:%d:%s()", d.File, d.Line, d.Func)
	if d.Kind == KindComparison {
		return fmt.Sprintf("%s Comparison '%s' failed, !(%s %s %s)", loc, d.Expr, d.X, d.Op, d.Y)
	}
	return fmt.Sprintf("%s Assertion '%s' failed", loc, d.Expr)
}

// AsDiagnostic extracts the Diagnostic carried by err, if any.
// Uses errors.As to see through GroupFailure and other wrappers.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
