package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"shakecalc/internal/domain"
)

// NewProgram builds the keypad program. Focus reporting is enabled so that
// leaving the terminal pauses the calculator and returning resumes it.
func NewProgram(ctx context.Context, calc Calculator, toaster *Toaster, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithReportFocus()}, opts...)
	return tea.NewProgram(New(calc, toaster), opts...)
}

// RunProgram runs p until the user quits. Cancellation of ctx is not an error.
func RunProgram(ctx context.Context, p *tea.Program) error {
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}

// SampleSink returns a motion sink that forwards samples to p's event loop.
func SampleSink(p *tea.Program) func(domain.Sample) {
	return func(s domain.Sample) { p.Send(SampleMsg(s)) }
}
