package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidNumber is returned when an operand is not a number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInternal is returned for token sequences the tokenizer never produces.
	ErrInternal = errors.New("internal evaluator error")
)

// EvalError describes which token made an evaluation fail.
type EvalError struct {
	Err   error
	Token string
	Pos   int
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", e.Err, e.Token, e.Pos)
}

func (e *EvalError) Unwrap() error { return e.Err }

// Evaluate computes text strictly left to right without operator precedence.
func Evaluate(text string) (float64, error) {
	tokens := Tokenize(text)
	if len(tokens) < 3 {
		return parseOperand(tokens[0])
	}
	if len(tokens)%2 == 0 {
		last := tokens[len(tokens)-1]
		return 0, &EvalError{Err: ErrInternal, Token: last.Text, Pos: last.Pos}
	}

	result, err := parseOperand(tokens[0])
	if err != nil {
		return 0, err
	}
	for i := 1; i < len(tokens); i += 2 {
		rhs, err := parseOperand(tokens[i+1])
		if err != nil {
			return 0, err
		}
		if result, err = apply(tokens[i], result, rhs); err != nil {
			return 0, err
		}
	}
	return result, nil
}

func apply(op Token, lhs, rhs float64) (float64, error) {
	if op.Kind != OperatorToken {
		return 0, &EvalError{Err: ErrInternal, Token: op.Text, Pos: op.Pos}
	}
	switch op.Text {
	case "+":
		return lhs + rhs, nil
	case "-":
		return lhs - rhs, nil
	case "*":
		return lhs * rhs, nil
	case "/":
		return lhs / rhs, nil
	}
	return 0, &EvalError{Err: ErrInternal, Token: op.Text, Pos: op.Pos}
}

// parseOperand accepts digits with dots, plus the non-finite spellings that
// Format writes back to the display.
func parseOperand(tok Token) (float64, error) {
	if tok.Kind != NumberToken {
		return 0, &EvalError{Err: ErrInternal, Token: tok.Text, Pos: tok.Pos}
	}
	switch tok.Text {
	case infinityText:
		return math.Inf(1), nil
	case nanText:
		return math.NaN(), nil
	}
	if !isDecimal(tok.Text) {
		return 0, &EvalError{Err: ErrInvalidNumber, Token: tok.Text, Pos: tok.Pos}
	}
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return 0, &EvalError{Err: ErrInvalidNumber, Token: tok.Text, Pos: tok.Pos}
	}
	return v, nil
}

// isDecimal reports whether s is non-empty and made only of digits and dots.
// strconv.ParseFloat still rejects malformed forms such as "1.2.3" or ".".
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' {
			return false
		}
	}
	return true
}
