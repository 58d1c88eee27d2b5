package myunit

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Integer is the set of types accepted by Int.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Assert checks a boolean condition.
//
// On failure it returns a *Diagnostic whose message quotes the condition's
// source:
//
//	demo.go:71:testFail() Assertion 'false' failed
func Assert(c *Counters, cond bool) error {
	c.countAssertion()
	if cond {
		return nil
	}

	site := callerSite(1)
	expr := "false"
	if args, ok := site.args("Assert", 2); ok {
		expr = args[1]
	}
	return &Diagnostic{
		File: site.file,
		Line: site.line,
		Func: site.fn,
		Kind: KindAssertion,
		Expr: expr,
	}
}

// Int compares two integers after converting each to int64 once.
// Unsigned values above math.MaxInt64 wrap, as any int64 conversion does.
func Int[I Integer](c *Counters, x I, op Op, y I) error {
	return compare(c, "Int", int64(x), op, int64(y), intOrder, formatInt)
}

// Str compares two strings byte-wise in lexicographic order.
func Str[S ~string](c *Counters, x S, op Op, y S) error {
	return compare(c, "Str", string(x), op, string(y), strings.Compare, formatStr)
}

// Float compares two floating-point values.
//
// Eq and Ne test exact bit-equality; there is no tolerance. Lt, Le, Gt and
// Ge use IEEE ordering. Operands that are neither bit-equal nor ordered
// (NaN, or 0 against -0) satisfy only Ne.
//
// Operands are rendered at their own precision, so a float32 0.1 prints as
// 0.1 rather than its float64 widening.
func Float[F ~float32 | ~float64](c *Counters, x F, op Op, y F) error {
	render := formatFloat64
	if reflect.TypeOf((*F)(nil)).Elem().Bits() == 32 {
		render = formatFloat32
	}
	return compare(c, "Float", float64(x), op, float64(y), floatOrder, render)
}

type operand interface {
	int64 | string | float64
}

// compare is the shared core of Int, Str and Float. The operands arrive
// already evaluated; name is the exported primitive used to find the call
// in the source.
func compare[V operand](
	c *Counters,
	name string,
	x V, op Op, y V,
	order func(x, y V) int,
	render func(V) string,
) error {
	c.countAssertion()
	if op.holds(order(x, y), ordered(x, y)) {
		return nil
	}

	site := callerSite(2)
	xs, ys := render(x), render(y)
	xText, yText := xs, ys
	if args, ok := site.args(name, 4); ok {
		xText, yText = args[1], args[3]
	}
	return &Diagnostic{
		File: site.file,
		Line: site.line,
		Func: site.fn,
		Kind: KindComparison,
		Expr: fmt.Sprintf("%s %s %s", xText, op, yText),
		Op:   op,
		X:    xs,
		Y:    ys,
	}
}

func intOrder(x, y int64) int {
	return cmp.Compare(x, y)
}

// floatOrder returns 0 for bit-equal values and otherwise the IEEE order.
// Unordered pairs also return 0; ordered reports them separately.
func floatOrder(x, y float64) int {
	switch {
	case math.Float64bits(x) == math.Float64bits(y):
		return 0
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// ordered reports whether x and y can be placed in a total order.
// Only floats can fail this: NaN against anything but itself, and the two
// signed zeros, which compare equal under IEEE but differ in bits.
func ordered[V operand](x, y V) bool {
	xf, ok := any(x).(float64)
	if !ok {
		return true
	}
	yf := any(y).(float64)
	return math.Float64bits(xf) == math.Float64bits(yf) || xf < yf || xf > yf
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatStr(v string) string {
	return v
}

func formatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatFloat32 expects v to hold a widened float32, which converts back
// exactly.
func formatFloat32(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 32)
}
