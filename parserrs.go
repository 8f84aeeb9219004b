package calculator

import "strconv"

// SyntaxError is an error indicating a character that cannot start or continue
// a token. It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending character.
	Col int
	// Char is the offending character.
	Char rune
	// Number is whether the lexer was scanning a number at the time, e.g. a
	// second decimal point in "1.2.3" or a lone ".".
	Number bool
}

func (err *SyntaxError) Error() string {
	if err.Number {
		return errpos(err.Col, "invalid number: unexpected "+strconv.QuoteRune(err.Char))
	}
	return errpos(err.Col, "unknown token "+strconv.QuoteRune(err.Char))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// OpenParenthesesError is an error indicating an open parenthesis that is
// never closed. It implements InputError.
type OpenParenthesesError struct {
	// Col is the position of the unmatched open parenthesis.
	Col int
}

func (err *OpenParenthesesError) Error() string {
	return errpos(err.Col, "open parenthesis with no close parenthesis")
}

func (err *OpenParenthesesError) Pos() int {
	return err.Col
}

// CloseParenthesesError is an error indicating a close parenthesis with no
// open parenthesis before it. It implements InputError.
type CloseParenthesesError struct {
	// Col is the position of the close parenthesis.
	Col int
}

func (err *CloseParenthesesError) Error() string {
	return errpos(err.Col, "close parenthesis with no open parenthesis")
}

func (err *CloseParenthesesError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError, except ErrNoInput and OperatorError,
// which describe the expression as a whole.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*OpenParenthesesError)(nil)
	_ InputError = (*CloseParenthesesError)(nil)
	_ InputError = (*ArgumentsError)(nil)
)
