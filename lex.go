package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical element of an expression. Postfix sequences
// contain only number and operator tokens.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Text is the token as written, without any whitespace.
	Text string
	// Op is the operator for TokenOp tokens.
	Op Operator
	// Val is the value of TokenNum tokens.
	Val float64
	// Col is the 1-based rune position of the start of the token in the
	// original input, counting whitespace.
	Col int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Col)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenEOF indicates the end of the input.
	TokenEOF
	// TokenNum is an integer or decimal number.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenEOF:
		return "EOF"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read so far.
	col int
	eof bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token with a nil error. Subsequent calls return an empty
// token with io.EOF.
func (l *lexer) next() (Token, error) {
	if l.eof {
		return Token{}, io.EOF
	}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				return Token{Kind: TokenEOF, Col: l.col + 1}, nil
			}
			return Token{}, err
		}
		tok := Token{Col: l.col}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			return l.scanNum()
		case r == '(':
			tok.Kind, tok.Text = TokenOpen, "("
			return tok, nil
		case r == ')':
			tok.Kind, tok.Text = TokenClose, ")"
			return tok, nil
		default:
			op, ok := operatorFor(r)
			if !ok {
				return tok, &SyntaxError{Col: l.col, Char: r}
			}
			tok.Kind, tok.Text, tok.Op = TokenOp, op.String(), op
			return tok, nil
		}
	}
}

// scanNum scans a run of digits containing at most one decimal point.
// Whitespace inside the run is skipped, so "1 2" is the number 12.
func (l *lexer) scanNum() (Token, error) {
	defer l.buf.Reset()
	tok := Token{Kind: TokenNum, Col: l.col + 1}
	var dig, dot bool
scan:
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			dig = true
		case r == '.':
			if dot {
				return Token{}, &SyntaxError{Col: l.col, Char: r, Number: true}
			}
			dot = true
		default:
			l.unreadRune()
			break scan
		}
		l.buf.WriteRune(r)
	}
	if !dig {
		return Token{}, &SyntaxError{Col: tok.Col, Char: '.', Number: true}
	}
	tok.Text = l.buf.String()
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("calculator: scanned invalid number " + strconv.Quote(tok.Text) + " (" + err.Error() + ")")
	}
	// Literals too large for a float64 are +Inf, the same as any other overflow.
	tok.Val = v
	return tok, nil
}
