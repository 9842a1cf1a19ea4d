package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shakecalc/internal/domain"
	"shakecalc/internal/services/calculator"
	"shakecalc/internal/store"
)

func newTestModel(t *testing.T) (Model, *store.MemoryStore) {
	t.Helper()
	prefs := store.NewMemoryStore()
	toaster := NewToaster()
	svc := calculator.New(prefs, nil, toaster, nil, calculator.Config{})
	return New(svc, toaster), prefs
}

func runes(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestModel_TypesAndEvaluates(t *testing.T) {
	m, prefs := newTestModel(t)

	m, _ = send(m, runes("2+3x4")...)
	assert.Equal(t, "2+3*4", m.Display())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "20", m.Display())
	assert.Contains(t, m.View(), "20")

	v, ok, err := prefs.GetString(domain.KeyLastResult)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "20", v)
}

func TestModel_BackspaceAndClear(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(m, runes("123")...)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "12", m.Display())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "0", m.Display())
}

func TestModel_ErrorDisplay(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(m, runes("1+.=")...)
	assert.Equal(t, "Error", m.Display())
	assert.Contains(t, m.View(), "Error")

	m, _ = send(m, runes("7")...)
	assert.Equal(t, "7", m.Display())
}

func TestModel_IgnoresUnmappedKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := send(m, runes("z%")...)
	assert.Nil(t, cmd)
	assert.Equal(t, "0", m.Display())
}

func TestModel_ShakeShowsToast(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(m, runes("99")...)

	m, cmd := send(m, SampleMsg{Z: domain.StandardGravity}, SampleMsg{X: 30, Z: domain.StandardGravity})
	assert.Equal(t, "0", m.Display())
	assert.Equal(t, domain.ShakeNotice, m.Toast())
	assert.Contains(t, m.View(), domain.ShakeNotice)
	require.NotNil(t, cmd, "toast expiry is scheduled")

	// A stale expiry does not hide a newer toast.
	m, _ = send(m, toastExpiredMsg{id: m.toastID - 1})
	assert.Equal(t, domain.ShakeNotice, m.Toast())

	m, _ = send(m, toastExpiredMsg{id: m.toastID})
	assert.Empty(t, m.Toast())
}

func TestModel_BlurPausesAndSaves(t *testing.T) {
	m, prefs := newTestModel(t)
	m, _ = send(m, runes("42")...)

	m, _ = send(m, tea.BlurMsg{})
	v, _, _ := prefs.GetString(domain.KeyLastResult)
	assert.Equal(t, "42", v)
	assert.Contains(t, m.View(), "paused")

	m, _ = send(m, SampleMsg{X: 40})
	assert.Equal(t, "42", m.Display(), "shakes are ignored while paused")

	m, _ = send(m, tea.FocusMsg{})
	assert.NotContains(t, m.View(), "paused")
}

func TestModel_QuitSaves(t *testing.T) {
	m, prefs := newTestModel(t)
	m, _ = send(m, runes("7")...)

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())

	v, _, _ := prefs.GetString(domain.KeyLastResult)
	assert.Equal(t, "7", v)
}

func TestModel_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	short := m.View()
	m, _ = send(m, runes("?")...)
	full := m.View()
	assert.True(t, strings.Contains(full, "digits"), full)
	assert.NotEqual(t, short, full)
}

func TestToaster_TakeNewest(t *testing.T) {
	toaster := NewToaster()
	_, ok := toaster.Take()
	assert.False(t, ok)

	toaster.Notify("a")
	toaster.Notify("b")
	msg, ok := toaster.Take()
	assert.True(t, ok)
	assert.Equal(t, "b", msg)

	_, ok = toaster.Take()
	assert.False(t, ok)
}
