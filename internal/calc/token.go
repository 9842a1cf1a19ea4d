package calc

import "strings"

// Operators lists the operator characters recognised by the tokenizer.
const Operators = "+-*/"

// TokenKind distinguishes operand tokens from operator tokens.
type TokenKind int

const (
	NumberToken TokenKind = iota
	OperatorToken
)

func (k TokenKind) String() string {
	switch k {
	case NumberToken:
		return "number"
	case OperatorToken:
		return "operator"
	default:
		return "unknown"
	}
}

// Token is one piece of a tokenized expression. Pos is the byte offset of the
// token in the source text.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// IsOperator reports whether r is one of the four operator characters.
func IsOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// Tokenize splits text at every boundary adjacent to an operator.
//
// The result always alternates number, operator, number and has odd length.
// Number tokens may be empty, e.g. for "-5" or "5++3"; Evaluate rejects those.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0, 8)
	start := 0
	for i, r := range text {
		if !IsOperator(r) {
			continue
		}
		tokens = append(tokens,
			Token{Kind: NumberToken, Text: text[start:i], Pos: start},
			Token{Kind: OperatorToken, Text: string(r), Pos: i},
		)
		start = i + 1
	}
	return append(tokens, Token{Kind: NumberToken, Text: text[start:], Pos: start})
}
