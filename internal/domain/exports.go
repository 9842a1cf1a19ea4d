package domain

import (
	interfaces "shakecalc/internal/domain/interfaces"
	types "shakecalc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PreferenceKey = types.PreferenceKey
	Sample        = types.Sample
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Haptic          = interfaces.Haptic
	Notifier        = interfaces.Notifier
	MotionSource    = interfaces.MotionSource
	PreferenceStore = interfaces.PreferenceStore
)

const (
	PreferencesName = types.PreferencesName
	KeyLastResult   = types.KeyLastResult
	DefaultDisplay  = types.DefaultDisplay
	ErrorDisplay    = types.ErrorDisplay
	ShakeNotice     = types.ShakeNotice
	StandardGravity = types.StandardGravity
)
