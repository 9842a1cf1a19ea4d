package calculator_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"shakecalc/internal/domain"
	"shakecalc/internal/keypad"
	"shakecalc/internal/motion"
	"shakecalc/internal/services/calculator"
	"shakecalc/internal/store"
)

type pulses struct {
	mu sync.Mutex
	n  int
}

func (p *pulses) Pulse() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.n++
}

func (p *pulses) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.n
}

type notes struct {
	mu   sync.Mutex
	msgs []string
}

func (n *notes) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

// failingStore rejects every write.
type failingStore struct{ *store.MemoryStore }

func (failingStore) PutString(domain.PreferenceKey, string) error {
	return errors.New("disk full")
}

type fixture struct {
	svc    *calculator.Service
	prefs  *store.MemoryStore
	haptic *pulses
	notes  *notes
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{prefs: store.NewMemoryStore(), haptic: &pulses{}, notes: &notes{}}
	f.svc = calculator.New(f.prefs, f.haptic, f.notes, zap.NewNop(), calculator.Config{})
	return f
}

func (f fixture) press(t *testing.T, labels ...string) keypad.State {
	t.Helper()
	keys, err := keypad.ParseKeys(labels)
	require.NoError(t, err)
	return f.svc.PressAll(keys)
}

func (f fixture) persisted(t *testing.T) (string, bool) {
	t.Helper()
	v, ok, err := f.prefs.GetString(domain.KeyLastResult)
	require.NoError(t, err)
	return v, ok
}

func TestLoad_Defaults(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Load())
	assert.Equal(t, keypad.Initial(), f.svc.State())
}

func TestLoad_RestoresAndContinues(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.prefs.PutString(domain.KeyLastResult, "12"))
	require.NoError(t, f.svc.Load())

	s := f.press(t, "+3=")
	assert.Equal(t, "15", s.Display)
}

func TestPress_PulsesEveryKey(t *testing.T) {
	f := newFixture(t)
	f.press(t, "1+", "DEL", "=", "C")
	assert.Equal(t, 5, f.haptic.count())
}

func TestPress_PersistsOnlyWhenSettled(t *testing.T) {
	f := newFixture(t)

	f.press(t, "12+3")
	_, ok := f.persisted(t)
	assert.False(t, ok, "digits and operators do not persist")

	f.press(t, "=")
	v, _ := f.persisted(t)
	assert.Equal(t, "15", v)

	f.press(t, "*2", "DEL")
	v, _ = f.persisted(t)
	assert.Equal(t, "15", v, "backspace does not persist")

	f.press(t, "C")
	v, _ = f.persisted(t)
	assert.Equal(t, "0", v)
	assert.Equal(t, 2, f.prefs.Puts())
}

func TestPress_FailedEvaluationIsNotPersisted(t *testing.T) {
	f := newFixture(t)
	f.press(t, "5-8=")
	s := f.press(t, "+1=")
	assert.Equal(t, "Error", s.Display)
	assert.True(t, s.Error)

	v, _ := f.persisted(t)
	assert.Equal(t, "-3", v)

	s = f.press(t, "7")
	assert.Equal(t, "7", s.Display)
	assert.False(t, s.Error)
}

func TestPress_PersistFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	svc := calculator.New(failingStore{store.NewMemoryStore()}, nil, nil, zap.New(core), calculator.Config{})

	s := svc.PressAll([]keypad.Key{keypad.Digit("6"), keypad.Operator("/"), keypad.Digit("3"), keypad.Equals})
	assert.Equal(t, "2", s.Display, "display is unaffected by a failed write")
	assert.Equal(t, 1, logs.FilterMessage("failed to persist display").Len())

	assert.Error(t, svc.Pause())
}

func TestSample_ShakeClearsDespitePersistFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	n := &notes{}
	svc := calculator.New(failingStore{store.NewMemoryStore()}, nil, n, zap.New(core), calculator.Config{})
	svc.PressAll([]keypad.Key{keypad.Digit("4"), keypad.Digit("2")})

	svc.Sample(domain.Sample{Z: domain.StandardGravity})
	assert.True(t, svc.Sample(domain.Sample{X: 25, Z: domain.StandardGravity}))

	assert.Equal(t, keypad.Initial(), svc.State())
	assert.Equal(t, []string{domain.ShakeNotice}, n.msgs, "the notice still goes out")
	assert.Equal(t, 1, logs.FilterMessage("failed to persist display").Len())
}

func TestSample_ShakeClears(t *testing.T) {
	f := newFixture(t)
	f.press(t, "12+3")

	assert.False(t, f.svc.Sample(domain.Sample{Z: domain.StandardGravity}))
	assert.True(t, f.svc.Sample(domain.Sample{X: 25, Z: domain.StandardGravity}))

	assert.Equal(t, keypad.Initial(), f.svc.State())
	v, _ := f.persisted(t)
	assert.Equal(t, "0", v)
	assert.Equal(t, []string{"Cleared by Shake!"}, f.notes.msgs)
	assert.Equal(t, 5, f.haptic.count(), "four key presses and one shake")
}

func TestSample_BelowThresholdNeverClears(t *testing.T) {
	f := newFixture(t)
	f.press(t, "9")
	for _, z := range []float64{9.8, 15, 21.8, 9.8} {
		assert.False(t, f.svc.Sample(domain.Sample{Z: z}))
	}
	assert.Equal(t, "9", f.svc.State().Display)
	assert.Empty(t, f.notes.msgs)
}

func TestSample_CustomThreshold(t *testing.T) {
	svc := calculator.New(store.NewMemoryStore(), nil, nil, nil, calculator.Config{Threshold: 3})
	assert.True(t, svc.Sample(domain.Sample{Z: 14}))
}

func TestPauseResume(t *testing.T) {
	f := newFixture(t)
	f.press(t, "42")

	require.NoError(t, f.svc.Pause())
	assert.True(t, f.svc.Paused())
	v, _ := f.persisted(t)
	assert.Equal(t, "42", v, "pause commits the display")

	assert.False(t, f.svc.Sample(domain.Sample{X: 40}), "paused calculators ignore shakes")
	assert.Equal(t, "42", f.svc.State().Display)

	f.svc.Resume()
	assert.False(t, f.svc.Paused())
	f.svc.Sample(domain.Sample{Z: domain.StandardGravity})
	assert.True(t, f.svc.Sample(domain.Sample{X: 40}))
}

func TestRun_ReplaysSource(t *testing.T) {
	f := newFixture(t)
	f.press(t, "7")

	src := motion.NewReaderSource(strings.NewReader("0,0,9.8\n0,0,40\n0,0,9.8\n0,0,40\n"), nil)
	require.NoError(t, f.svc.Run(context.Background(), src))
	assert.Len(t, f.notes.msgs, 2)
	assert.Equal(t, "0", f.svc.State().Display)
}
