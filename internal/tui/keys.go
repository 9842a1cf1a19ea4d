package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"shakecalc/internal/keypad"
)

type keyMap struct {
	Digits    key.Binding
	Operators key.Binding
	Equals    key.Binding
	Clear     key.Binding
	Backspace key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9 .", "digits"),
		),
		Operators: key.NewBinding(
			key.WithKeys("+", "-", "*", "/", "x"),
			key.WithHelp("+ - * /", "operators"),
		),
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "equals"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C", "esc"),
			key.WithHelp("c", "clear"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Backspace, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Operators, k.Equals},
		{k.Clear, k.Backspace},
		{k.Help, k.Quit},
	}
}

// grid is the keypad layout; empty cells are blank.
var grid = [][]string{
	{"C", "⌫", "/", "*"},
	{"7", "8", "9", "-"},
	{"4", "5", "6", "+"},
	{"1", "2", "3", "="},
	{"0", ".", "", ""},
}

// gridLabel returns the keypad cell that shows k.
func gridLabel(k keypad.Key) string {
	switch k.Kind {
	case keypad.KindClear:
		return "C"
	case keypad.KindBackspace:
		return "⌫"
	case keypad.KindEquals:
		return "="
	}
	return k.Label
}
