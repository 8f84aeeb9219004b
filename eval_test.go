package calculator_test

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "7", 7},
		{"add", "5+5", 10},
		{"add-chain", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"prec", "3+4*5", 23},
		{"paren", "(3+4)*5", 35},
		{"long", "(15 + 7) / 2 - (65 - 61) * 2", 3},
		{"nested", "((2))", 2},
		{"fraction", "10/4", 2.5},
		{"decimal", "3.5*2", 7},
		{"leading-dot", ".5+.25", 0.75},
		{"split-digits", "1 2 + 3", 15},
		{"negative-result", "1-10", -9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.EvaluateString(c.src)
			require.NoError(t, err, "evaluating %q", c.src)
			assert.Equal(t, c.r, r, "evaluating %q", c.src)
		})
	}
}

func TestEvalIEEE(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ok   func(float64) bool
	}{
		{"div-zero", "1/0", func(r float64) bool { return math.IsInf(r, 1) }},
		{"neg-inf", "1-2/0", func(r float64) bool { return math.IsInf(r, -1) }},
		{"nan", "0/0", math.IsNaN},
		// Literals too large for float64 are +Inf rather than 0.
		{"overflow", strings.Repeat("9", 400), func(r float64) bool { return math.IsInf(r, 1) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.EvaluateString(c.src)
			require.NoError(t, err)
			assert.True(t, c.ok(r), "evaluating %q gave %g", c.src, r)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", calculator.ErrNoInput},
		{"blank", " \t", calculator.ErrNoInput},
		{"empty-parens", "(())", calculator.ErrNoInput},
		{"lone-op", "+", &calculator.ArgumentsError{Col: 1, Op: calculator.OpAdd, Have: 0}},
		{"trailing-op", "3+", &calculator.ArgumentsError{Col: 2, Op: calculator.OpAdd, Have: 1}},
		{"leading-op", "*3", &calculator.ArgumentsError{Col: 1, Op: calculator.OpMul, Have: 1}},
		{"unary-minus", "-3", &calculator.ArgumentsError{Col: 1, Op: calculator.OpSub, Have: 1}},
		{"no-operator", "(3)(4)", &calculator.OperatorError{Remaining: 2}},
		{"no-operators", "(1)(2)(3+4)", &calculator.OperatorError{Remaining: 3}},
		{"unclosed", "(11 + 13 * 2", &calculator.OpenParenthesesError{Col: 1}},
		{"unopened", "11 + 13) * 2", &calculator.CloseParenthesesError{Col: 8}},
		{"syntax", "2 % 3", &calculator.SyntaxError{Col: 3, Char: '%'}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.EvaluateString(c.src)
			require.Error(t, err, "evaluating %q gave %g", c.src, r)
			assert.Zero(t, r)
			assert.Equal(t, c.want, err)
		})
	}
	t.Run("is-no-input", func(t *testing.T) {
		_, err := calculator.Process(nil)
		assert.True(t, errors.Is(err, calculator.ErrNoInput))
	})
}

func TestEvalIdempotent(t *testing.T) {
	srcs := []string{"(15 + 7) / 2 - (65 - 61) * 2", "1/3", "0/0", "3+", ""}
	for _, src := range srcs {
		r1, err1 := calculator.EvaluateString(src)
		r2, err2 := calculator.EvaluateString(src)
		assert.Equal(t, err1, err2, "evaluating %q", src)
		assert.Equal(t, math.Float64bits(r1), math.Float64bits(r2), "evaluating %q", src)
	}
}

func TestProcessReuse(t *testing.T) {
	p, err := calculator.ParseString("8/4/2")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		r, err := calculator.Process(p)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r)
	}
	assert.Equal(t, "8 4 / 2 /", p.String())
}

func TestEvalConcurrent(t *testing.T) {
	const src = "(15 + 7) / 2 - (65 - 61) * 2"
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < cap(errs); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r, err := calculator.EvaluateString(src)
				if err == nil && r != 3 {
					err = fmt.Errorf("got %g", r)
				}
				if err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

// infix evaluates a Go expression AST containing only literals, parentheses,
// and the four arithmetic operators. Go's precedence and associativity for
// those match the calculator's.
func infix(t *testing.T, e ast.Expr) float64 {
	t.Helper()
	switch e := e.(type) {
	case *ast.ParenExpr:
		return infix(t, e.X)
	case *ast.BasicLit:
		v, err := strconv.ParseFloat(e.Value, 64)
		require.NoError(t, err)
		return v
	case *ast.BinaryExpr:
		l, r := infix(t, e.X), infix(t, e.Y)
		switch e.Op {
		case token.ADD:
			return l + r
		case token.SUB:
			return l - r
		case token.MUL:
			return l * r
		case token.QUO:
			return l / r
		}
	}
	t.Fatalf("unexpected expression %T", e)
	return 0
}

// randExpr creates a random well-formed expression.
func randExpr(rng *rand.Rand, depth int) string {
	if depth <= 0 || rng.Intn(4) == 0 {
		if rng.Intn(5) == 0 {
			return strconv.Itoa(rng.Intn(100)) + "." + strconv.Itoa(rng.Intn(100))
		}
		return strconv.Itoa(rng.Intn(100))
	}
	if rng.Intn(4) == 0 {
		return "(" + randExpr(rng, depth-1) + ")"
	}
	op := string(calculator.Operators[rng.Intn(len(calculator.Operators))])
	return randExpr(rng, depth-1) + " " + op + " " + randExpr(rng, depth-1)
}

func TestEvalMatchesInfix(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		src := randExpr(rng, 6)
		e, err := parser.ParseExpr(src)
		require.NoError(t, err, "go parser rejected %q", src)
		want := infix(t, e)
		got, err := calculator.EvaluateString(src)
		require.NoError(t, err, "evaluating %q", src)
		if math.IsNaN(want) {
			assert.True(t, math.IsNaN(got), "evaluating %q: want NaN, got %g", src, got)
			continue
		}
		assert.Equal(t, want, got, "evaluating %q", src)
	}
}
