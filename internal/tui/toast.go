package tui

import (
	"sync"

	"shakecalc/internal/domain"
)

// Toaster collects notifications raised by the calculator so the model can
// show them after the call that raised them returns.
type Toaster struct {
	mu      sync.Mutex
	pending []string
}

func NewToaster() *Toaster { return &Toaster{} }

func (t *Toaster) Notify(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = append(t.pending, message)
}

// Take returns the newest pending message and clears the queue.
func (t *Toaster) Take() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.pending) == 0 {
		return "", false
	}
	msg := t.pending[len(t.pending)-1]
	t.pending = t.pending[:0]
	return msg, true
}

var _ domain.Notifier = (*Toaster)(nil)
