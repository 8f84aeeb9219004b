// Package calculator evaluates arithmetic expressions written the way you'd
// punch them into a desk calculator.
//
// An expression is made of decimal numbers, the binary operators + - * /, and
// parentheses. Multiplication and division bind tighter than addition and
// subtraction, and operators of equal precedence group left to right, so
// "3-4-5" is "(3-4)-5". Whitespace is ignored everywhere, even between the
// digits of a number.
//
// Evaluation happens in two passes. Parse converts infix text to a Postfix
// sequence with the shunting-yard algorithm, and Process runs that sequence
// on a value stack. EvaluateString does both. All arithmetic is float64, so
// dividing by zero gives an infinity or NaN rather than an error.
//
// Every function in the package is safe for concurrent use.
package calculator
