// Package calc evaluates flat calculator expressions.
//
// An expression is a sequence of numbers joined by the single-character
// operators + - * / with no spaces, grouping or precedence. Evaluate folds it
// strictly left to right, so "2+3*4" is 20.
//
// # Limitations
//
// A leading minus sign is an operator like any other, so an expression that
// starts with a negative number has an empty first operand and fails with
// ErrInvalidNumber. Division by zero is not an error: it follows IEEE-754 and
// yields an infinity or NaN, which Format renders as "Infinity", "-Infinity"
// or "NaN".
package calc
