// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (samples, preference keys, display constants) and
// contracts (capability interfaces for the haptic device, the motion sensor,
// the notifier and the preference store) only.
package domain
