package interfaces

import (
	"context"

	domaintypes "shakecalc/internal/domain/types"
)

// Haptic emits a short feedback pulse. Implementations without a device do nothing.
type Haptic interface {
	Pulse()
}

// Notifier shows a short-lived message to the user.
type Notifier interface {
	Notify(message string)
}

// MotionSource delivers accelerometer samples to sink until ctx is done or the
// source is exhausted. Samples are delivered one at a time, in order.
type MotionSource interface {
	Stream(ctx context.Context, sink func(domaintypes.Sample)) error
}
