package myunit

import "fmt"

// Op is a comparison operator for Int, Str and Float.
type Op int

// Comparison operators.
const (
	Eq Op = iota + 1 // ==
	Ne               // !=
	Lt               // <
	Le               // <=
	Gt               // >
	Ge               // >=
)

// String renders the operator as its Go symbol.
func (op Op) String() string {
	switch op {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Valid reports whether op is one of the defined operators.
func (op Op) Valid() bool {
	return op >= Eq && op <= Ge
}

// holds applies op to the sign of a three-way comparison.
// Unordered operands (NaN, signed zeros) satisfy only Ne.
// An invalid op never holds.
func (op Op) holds(sign int, ordered bool) bool {
	if !ordered {
		return op == Ne
	}
	switch op {
	case Eq:
		return sign == 0
	case Ne:
		return sign != 0
	case Lt:
		return sign < 0
	case Le:
		return sign <= 0
	case Gt:
		return sign > 0
	case Ge:
		return sign >= 0
	default:
		return false
	}
}
