package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is the error returned when evaluating an empty expression.
var ErrNoInput = errors.New("nothing to evaluate")

// stack is the value stack used to evaluate postfix expressions.
type stack []float64

func (s *stack) push(v float64) {
	*s = append(*s, v)
}

// pop removes the top from the stack and returns it.
func (s *stack) pop() float64 {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

// Process evaluates a postfix expression. For each operator, the value popped
// first is the right operand.
func Process(p Postfix) (float64, error) {
	if len(p) == 0 {
		return 0, ErrNoInput
	}
	s := make(stack, 0, len(p)/2+1)
	for _, tok := range p {
		switch tok.Kind {
		case TokenNum:
			s.push(tok.Val)
		case TokenOp:
			if len(s) < 2 {
				return 0, &ArgumentsError{Col: tok.Col, Op: tok.Op, Have: len(s)}
			}
			r := s.pop()
			l := s.pop()
			s.push(tok.Op.Apply(l, r))
		default:
			panic("calculator: invalid postfix token " + tok.String())
		}
	}
	if len(s) != 1 {
		return 0, &OperatorError{Remaining: len(s)}
	}
	return s[0], nil
}

// Evaluate is a shortcut to parse an expression and return its result.
func Evaluate(src io.RuneScanner) (float64, error) {
	p, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return Process(p)
}

// EvaluateString is a shortcut to parse and evaluate a string expression.
func EvaluateString(src string) (float64, error) {
	return Evaluate(strings.NewReader(src))
}

// ArgumentsError is an error indicating an operator applied with fewer than
// two operands available. It implements InputError.
type ArgumentsError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op Operator
	// Have is the number of operands that were available.
	Have int
}

func (err *ArgumentsError) Error() string {
	return errpos(err.Col, "operator "+err.Op.String()+" needs 2 arguments, have "+strconv.Itoa(err.Have))
}

func (err *ArgumentsError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating that an expression has too few
// operators to combine all of its values.
type OperatorError struct {
	// Remaining is the number of values left after evaluation.
	Remaining int
}

func (err *OperatorError) Error() string {
	return "insufficient operators: " + strconv.Itoa(err.Remaining) + " values remain"
}
