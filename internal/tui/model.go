package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shakecalc/internal/domain"
	"shakecalc/internal/keypad"
)

// ToastDuration is how long a notification stays on screen.
const ToastDuration = 2 * time.Second

// Calculator is the part of the calculator service the keypad drives.
type Calculator interface {
	Press(k keypad.Key) keypad.State
	Sample(s domain.Sample) bool
	State() keypad.State
	Pause() error
	Resume()
}

// SampleMsg delivers one accelerometer sample to the model.
type SampleMsg domain.Sample

type toastExpiredMsg struct{ id int }

// Model is the keypad screen.
type Model struct {
	calc    Calculator
	toaster *Toaster
	keys    keyMap
	help    help.Model

	state    keypad.State
	pressed  string
	toast    string
	toastID  int
	paused   bool
	quitting bool
	err      error
}

// New returns a model showing the calculator's current state. toaster must be
// the Notifier the calculator was built with.
func New(calc Calculator, toaster *Toaster) Model {
	return Model{
		calc:    calc,
		toaster: toaster,
		keys:    newKeyMap(),
		help:    help.New(),
		state:   calc.State(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case SampleMsg:
		m.calc.Sample(domain.Sample(msg))
		m.state = m.calc.State()
		return m, m.takeToast()

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil

	case tea.BlurMsg:
		m.err = m.calc.Pause()
		m.paused = true
		return m, nil

	case tea.FocusMsg:
		m.calc.Resume()
		m.paused = false
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.err = m.calc.Pause()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	k, ok := m.keyFor(msg)
	if !ok {
		return m, nil
	}
	m.state = m.calc.Press(k)
	m.pressed = gridLabel(k)
	return m, m.takeToast()
}

// keyFor maps a terminal key to a calculator key.
func (m Model) keyFor(msg tea.KeyMsg) (keypad.Key, bool) {
	switch {
	case key.Matches(msg, m.keys.Equals):
		return keypad.Equals, true
	case key.Matches(msg, m.keys.Clear):
		return keypad.Clear, true
	case key.Matches(msg, m.keys.Backspace):
		return keypad.Backspace, true
	case key.Matches(msg, m.keys.Digits), key.Matches(msg, m.keys.Operators):
		k, err := keypad.ParseKey(msg.String())
		return k, err == nil
	}
	return keypad.Key{}, false
}

// takeToast shows the newest pending notification and schedules its expiry.
func (m *Model) takeToast() tea.Cmd {
	msg, ok := m.toaster.Take()
	if !ok {
		return nil
	}
	m.toastID++
	m.toast = msg
	id := m.toastID
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	display := displayStyle
	if m.state.Error {
		display = errorDisplayStyle
	}
	b.WriteString(display.Render(m.state.Display))
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	switch {
	case m.toast != "":
		b.WriteString(toastStyle.Render(m.toast))
	case m.paused:
		b.WriteString(statusStyle.Render("paused"))
	case m.err != nil:
		b.WriteString(statusStyle.Render("save failed: " + m.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String() + "\n"
}

func (m Model) renderGrid() string {
	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			cells = append(cells, m.cellStyle(label).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) cellStyle(label string) lipgloss.Style {
	switch {
	case label == "":
		return blankCellStyle
	case label == m.pressed:
		return pressedCellStyle
	case strings.Contains("+-*/=", label):
		return operatorCellStyle
	}
	return cellStyle
}

// Display returns the text currently on the calculator display.
func (m Model) Display() string { return m.state.Display }

// Toast returns the notification currently shown, if any.
func (m Model) Toast() string { return m.toast }

// Err returns the last pause/save error.
func (m Model) Err() error { return m.err }
