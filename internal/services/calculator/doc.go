// Package calculator is the controller that owns the keypad state machine.
//
// It forwards key presses to keypad.State, pulses the haptic device on every
// press, feeds accelerometer samples to a shake detector, and commits the
// display to the preference store when it settles: after Clear, after a
// successful Equals, and when the app is paused. Nothing else is persisted.
//
// Commits are fire-and-forget on the key path: a failed write is logged and
// counted but never changes the display. Pause returns the error so the
// caller can report it on exit.
package calculator
