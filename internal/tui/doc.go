// Package tui renders the calculator keypad in the terminal with bubbletea.
//
// The model is a thin subscriber: it forwards key presses and motion samples
// to the calculator service and renders the state that comes back. Motion
// samples reach the model as SampleMsg values sent through tea.Program.Send,
// so they are handled on the same event loop as key presses.
package tui
