package calculator

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"shakecalc/internal/domain"
	"shakecalc/internal/haptic"
	"shakecalc/internal/keypad"
	"shakecalc/internal/metrics"
	"shakecalc/internal/motion"
)

// Config tunes the shake detector.
type Config struct {
	Threshold float64 // magnitude increase that counts as a shake; 0 selects the default
	Gravity   float64 // resting magnitude; 0 selects standard gravity
}

// Service serializes every operation with a mutex, so key presses and
// samples may arrive from different goroutines.
type Service struct {
	prefs    domain.PreferenceStore
	haptic   domain.Haptic
	notifier domain.Notifier
	log      *zap.Logger

	mu       sync.Mutex
	state    keypad.State
	detector *motion.Detector
	paused   bool
}

// New returns a running (not paused) calculator showing "0". Call Load to
// restore the persisted display. Nil haptic, notifier and log are replaced
// with no-ops.
func New(
	prefs domain.PreferenceStore,
	h domain.Haptic,
	notifier domain.Notifier,
	log *zap.Logger,
	cfg Config,
) *Service {
	if h == nil {
		h = haptic.Nop{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		prefs:    prefs,
		haptic:   h,
		notifier: notifier,
		log:      log,
		state:    keypad.Initial(),
		detector: motion.NewDetector(cfg.Threshold, cfg.Gravity),
	}
}

// Load restores the display from the preference store. A missing value
// restores "0". On error the state is left unchanged.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, ok, err := s.prefs.GetString(domain.KeyLastResult)
	if err != nil {
		return fmt.Errorf("load last result: %w", err)
	}
	if !ok {
		text = domain.DefaultDisplay
	}
	s.state = keypad.Restore(text)
	s.log.Debug("restored display", zap.String("display", s.state.Display))
	return nil
}

// State returns a snapshot of the current state.
func (s *Service) State() keypad.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Press applies one key and returns the resulting state.
func (s *Service) Press(k keypad.Key) keypad.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.press(k)
}

// PressAll applies keys in order and returns the final state.
func (s *Service) PressAll(keys []keypad.Key) keypad.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		s.press(k)
	}
	return s.state
}

func (s *Service) press(k keypad.Key) keypad.State {
	s.haptic.Pulse()
	metrics.IncKeyPressed(k.Kind.String())

	next, out := s.state.Apply(k)
	s.state = next

	if out.Err != nil {
		metrics.IncEvaluation(false)
		s.log.Debug("evaluation failed", zap.Error(out.Err))
	} else if out.Settled {
		metrics.IncEvaluation(true)
	}
	if out.Settled || k.Kind == keypad.KindClear {
		_ = s.commit() // logged in commit
	}
	return next
}

// Sample feeds one accelerometer reading to the shake detector and reports
// whether it cleared the display. Samples are ignored while paused.
func (s *Service) Sample(sample domain.Sample) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return false
	}
	metrics.IncMotionSample()
	delta, fired := s.detector.Observe(sample)
	if !fired {
		return false
	}

	s.log.Info("shake detected", zap.Float64("delta", delta))
	s.state = s.state.Clear()
	_ = s.commit() // logged in commit
	s.haptic.Pulse()
	s.notifier.Notify(domain.ShakeNotice)
	metrics.IncShakeCleared()
	return true
}

// Run feeds samples from src until ctx is done or src is exhausted.
func (s *Service) Run(ctx context.Context, src domain.MotionSource) error {
	return src.Stream(ctx, func(sample domain.Sample) { s.Sample(sample) })
}

// Pause commits the display and stops consuming samples until Resume.
func (s *Service) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
	return s.commit()
}

// Resume starts consuming samples again.
func (s *Service) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
}

// Paused reports whether samples are currently ignored.
func (s *Service) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// commit writes the display to the preference store. Callers hold s.mu.
func (s *Service) commit() error {
	err := s.prefs.PutString(domain.KeyLastResult, s.state.Display)
	metrics.IncPersist(err == nil)
	if err != nil {
		s.log.Warn("failed to persist display", zap.String("display", s.state.Display), zap.Error(err))
		return fmt.Errorf("persist display: %w", err)
	}
	return nil
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}
