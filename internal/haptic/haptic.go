// Package haptic provides feedback sinks for key presses and shakes.
package haptic

import (
	"io"
	"sync"

	"shakecalc/internal/domain"
)

// bel is the terminal bell, the closest thing a terminal has to a vibration motor.
const bel = "\a"

// Bell rings the terminal bell on W for each pulse.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a Bell writing to w. A nil w gives a Bell without a device.
func NewBell(w io.Writer) *Bell { return &Bell{w: w} }

// Pulse rings once. Write errors are ignored; feedback is best effort.
func (b *Bell) Pulse() {
	if b == nil || b.w == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, bel)
}

// Nop is a haptic sink for hosts without a device.
type Nop struct{}

func (Nop) Pulse() {}

var (
	_ domain.Haptic = (*Bell)(nil)
	_ domain.Haptic = Nop{}
)
