package calculator

import "strconv"

// Operator is a binary arithmetic operator.
type Operator int8

const (
	opNone Operator = iota
	// OpAdd is +.
	OpAdd
	// OpSub is -.
	OpSub
	// OpMul is *.
	OpMul
	// OpDiv is /.
	OpDiv
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// operatorFor gets the operator for a rune. If there is no such operator, the
// result is false.
func operatorFor(r rune) (Operator, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*':
		return OpMul, true
	case '/':
		return OpDiv, true
	default:
		return opNone, false
	}
}

// Precedence returns the binding strength of the operator. Higher binds
// tighter. All operators are left-associative.
func (op Operator) Precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	default:
		panic("calculator: precedence of invalid operator " + op.String())
	}
}

// Apply computes l op r. Division by zero follows IEEE 754.
func (op Operator) Apply(l, r float64) float64 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	default:
		panic("calculator: apply invalid operator " + op.String())
	}
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
}
