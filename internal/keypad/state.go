package keypad

import (
	"unicode"
	"unicode/utf8"

	"shakecalc/internal/calc"
	"shakecalc/internal/domain"
)

// State is the display text plus the flags that decide which keys are valid.
type State struct {
	Display     string
	LastNumeric bool
	Error       bool
	LastDot     bool
}

// Outcome describes a transition. Settled is true when the display holds a
// freshly computed result; Err is the evaluation failure behind an Error state.
type Outcome struct {
	Changed bool
	Settled bool
	Err     error
}

// Initial returns the state of a freshly cleared calculator.
func Initial() State {
	return State{Display: domain.DefaultDisplay}
}

// Restore rebuilds a state from a persisted display string.
func Restore(text string) State {
	switch text {
	case "", domain.DefaultDisplay:
		return Initial()
	case domain.ErrorDisplay:
		return State{Display: domain.ErrorDisplay, Error: true}
	}
	return State{Display: text, LastNumeric: true}
}

// Apply performs the transition for k.
func (s State) Apply(k Key) (State, Outcome) {
	var next State
	var out Outcome
	switch k.Kind {
	case KindDigit:
		next = s.Digit(k.Label)
	case KindOperator:
		next = s.Operator(k.Label)
	case KindClear:
		next = s.Clear()
	case KindBackspace:
		next = s.Backspace()
	case KindEquals:
		next, out.Err = s.Equals()
		out.Settled = out.Err == nil && s.LastNumeric && !s.Error
	default:
		return s, out
	}
	out.Changed = next != s
	return next, out
}

// Digit appends d, or replaces the display when it shows "0" or an error.
func (s State) Digit(d string) State {
	switch {
	case s.Error:
		s.Display = d
		s.Error = false
	case s.Display == domain.DefaultDisplay && d != ".":
		s.Display = d
	default:
		s.Display += d
	}
	s.LastNumeric = true
	return s
}

// Operator appends op when the display ends in a number.
func (s State) Operator(op string) State {
	if !s.LastNumeric || s.Error {
		return s
	}
	s.Display += op
	s.LastNumeric = false
	s.LastDot = false
	return s
}

// Clear resets everything.
func (s State) Clear() State {
	return Initial()
}

// Backspace removes the last character.
func (s State) Backspace() State {
	if s.Display == domain.DefaultDisplay {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.Display)
	s.Display = s.Display[:len(s.Display)-size]
	if s.Display == "" {
		s.Display = domain.DefaultDisplay
		s.LastNumeric = false
		return s
	}
	last, _ := utf8.DecodeLastRuneInString(s.Display)
	s.LastNumeric = unicode.IsDigit(last)
	return s
}

// Equals evaluates the display. On failure the returned state shows the
// error indicator and the evaluation error is returned alongside it.
func (s State) Equals() (State, error) {
	if !s.LastNumeric || s.Error {
		return s, nil
	}
	v, err := calc.Evaluate(s.Display)
	if err != nil {
		s.Display = domain.ErrorDisplay
		s.Error = true
		s.LastNumeric = false
		return s, err
	}
	s.Display = calc.Format(v)
	s.LastDot = true
	return s, nil
}
