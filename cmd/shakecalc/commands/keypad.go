package commands

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"shakecalc/internal/app"
	"shakecalc/internal/tui"
)

// runKeypad runs the terminal keypad alongside the motion source and the
// HTTP listener. Quitting the keypad stops everything else.
func runKeypad(cmd *cobra.Command, _ []string) error {
	toaster := tui.NewToaster()
	w, err := openWire(app.WireOptions{Notifier: toaster, HapticOut: os.Stderr})
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	p := tui.NewProgram(gctx, w.Calculator, toaster, tea.WithAltScreen())
	g.Go(func() error {
		defer cancel()
		return tui.RunProgram(gctx, p)
	})
	if w.Motion != nil {
		g.Go(func() error { return w.Motion.Stream(gctx, tui.SampleSink(p)) })
	}
	g.Go(func() error { return w.Serve(gctx) })

	err = g.Wait()
	// A killed program never saw its quit key.
	if perr := w.Calculator.Pause(); err == nil {
		err = perr
	}
	return err
}
