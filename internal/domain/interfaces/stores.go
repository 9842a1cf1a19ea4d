package interfaces

import domaintypes "shakecalc/internal/domain/types"

// PreferenceStore persists small string values under fixed keys.
type PreferenceStore interface {
	PutString(key domaintypes.PreferenceKey, value string) error
	GetString(key domaintypes.PreferenceKey) (string, bool, error)
}
