package keypad

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned by ParseKey for labels that are not on the keypad.
var ErrUnknownKey = errors.New("unknown key")

// Kind is the category of a key press.
type Kind int

const (
	KindDigit Kind = iota
	KindOperator
	KindClear
	KindBackspace
	KindEquals
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindOperator:
		return "operator"
	case KindClear:
		return "clear"
	case KindBackspace:
		return "backspace"
	case KindEquals:
		return "equals"
	default:
		return "unknown"
	}
}

// Key is one key press. Label carries the digit or operator text that is
// appended to the display; it is ignored for the other kinds.
type Key struct {
	Kind  Kind
	Label string
}

func (k Key) String() string {
	if k.Kind == KindDigit || k.Kind == KindOperator {
		return k.Label
	}
	return k.Kind.String()
}

// Convenience constructors.
func Digit(d string) Key     { return Key{Kind: KindDigit, Label: d} }
func Operator(op string) Key { return Key{Kind: KindOperator, Label: op} }

var (
	Clear     = Key{Kind: KindClear}
	Backspace = Key{Kind: KindBackspace}
	Equals    = Key{Kind: KindEquals}
)

// ParseKey maps a key label to a Key. Operator aliases are normalised to the
// character the evaluator understands.
func ParseKey(label string) (Key, error) {
	switch l := strings.TrimSpace(label); l {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		return Digit(l), nil
	case "+", "-", "*", "/":
		return Operator(l), nil
	case "x", "X", "×":
		return Operator("*"), nil
	case "÷":
		return Operator("/"), nil
	case "=":
		return Equals, nil
	case "C", "c", "AC", "ac":
		return Clear, nil
	case "DEL", "del", "⌫", "<":
		return Backspace, nil
	}
	return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, label)
}

// ParseKeys splits a sequence of labels. A single argument such as "12+3="
// is split into one key per rune; multi-rune labels must be given separately.
func ParseKeys(labels []string) ([]Key, error) {
	keys := make([]Key, 0, len(labels))
	for _, label := range labels {
		if k, err := ParseKey(label); err == nil {
			keys = append(keys, k)
			continue
		}
		for _, r := range label {
			k, err := ParseKey(string(r))
			if err != nil {
				return nil, fmt.Errorf("in %q: %w", label, err)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}
