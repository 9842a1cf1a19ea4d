// Package keypad is the calculator's input state machine.
//
// State is a value: every key operation returns the next State and never
// touches I/O, so the controller decides what to persist and the UI only
// renders. Apply dispatches a Key and reports whether the transition settled
// the display (a successful Equals), which is when the controller commits.
//
// Two behaviours are kept on purpose. LastDot is tracked but never consulted,
// so a number may contain more than one decimal point. Backspace recomputes
// LastNumeric from the final character alone, so deleting back to a trailing
// "." leaves LastNumeric false.
package keypad
