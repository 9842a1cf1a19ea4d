package types

// PreferenceKey names a single entry in the preference store.
type PreferenceKey string

// String returns the string form of the key.
func (k PreferenceKey) String() string { return string(k) }

const (
	// PreferencesName is the name of the preference set holding calculator state.
	PreferencesName = "ShakeCalcPrefs"

	// KeyLastResult holds the last committed display text.
	KeyLastResult PreferenceKey = "last_result"

	// DefaultDisplay is shown when nothing has been entered or restored.
	DefaultDisplay = "0"

	// ErrorDisplay replaces the display after a failed evaluation.
	ErrorDisplay = "Error"

	// ShakeNotice is shown once each time a shake clears the display.
	ShakeNotice = "Cleared by Shake!"
)
