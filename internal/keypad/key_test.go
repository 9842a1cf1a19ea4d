package keypad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shakecalc/internal/keypad"
)

func TestParseKey(t *testing.T) {
	cases := map[string]keypad.Key{
		"7":   keypad.Digit("7"),
		".":   keypad.Digit("."),
		"-":   keypad.Operator("-"),
		"×":   keypad.Operator("*"),
		"÷":   keypad.Operator("/"),
		"=":   keypad.Equals,
		"AC":  keypad.Clear,
		"DEL": keypad.Backspace,
		" ⌫ ": keypad.Backspace,
	}
	for label, want := range cases {
		got, err := keypad.ParseKey(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}

	_, err := keypad.ParseKey("%")
	assert.ErrorIs(t, err, keypad.ErrUnknownKey)
}

func TestParseKeys(t *testing.T) {
	keys, err := keypad.ParseKeys([]string{"12+3", "DEL", "="})
	require.NoError(t, err)
	assert.Equal(t, []keypad.Key{
		keypad.Digit("1"), keypad.Digit("2"), keypad.Operator("+"), keypad.Digit("3"),
		keypad.Backspace, keypad.Equals,
	}, keys)

	_, err = keypad.ParseKeys([]string{"1%2"})
	assert.ErrorIs(t, err, keypad.ErrUnknownKey)
}
