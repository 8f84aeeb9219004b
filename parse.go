package calculator

import (
	"io"
	"strings"
)

// Postfix is an expression in postfix order, e.g. "3 4 5 * +" for "3+4*5".
// It contains only TokenNum and TokenOp tokens.
type Postfix []Token

// Parse converts an infix expression to postfix order with the shunting-yard
// algorithm. An input with no tokens, or only empty parentheses, parses to an
// empty Postfix without error; Process reports it.
func Parse(src io.RuneScanner) (Postfix, error) {
	scan := lex(src)
	var out Postfix
	// ops is the operator stack. It holds operators and open parentheses.
	var ops []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenOp:
			// Everything at least as binding as the new operator goes first,
			// which makes equal precedence left-associative.
			prec := tok.Op.Precedence()
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == TokenOpen || top.Op.Precedence() < prec {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case TokenOpen:
			ops = append(ops, tok)
		case TokenClose:
			for {
				if len(ops) == 0 {
					return nil, &CloseParenthesesError{Col: tok.Col}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		case TokenEOF:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == TokenOpen {
					return nil, &OpenParenthesesError{Col: top.Col}
				}
				out = append(out, top)
			}
			return out, nil
		default:
			panic("calculator: unknown token: " + tok.String())
		}
	}
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string) (Postfix, error) {
	return Parse(strings.NewReader(src))
}

// Strings returns the text of each token in order.
func (p Postfix) Strings() []string {
	r := make([]string, len(p))
	for i, tok := range p {
		r[i] = tok.Text
	}
	return r
}

// String formats the sequence with tokens separated by spaces.
func (p Postfix) String() string {
	return strings.Join(p.Strings(), " ")
}
