package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shakecalc/internal/app"
)

// logNotifier reports notifications through the logger.
type logNotifier struct{ log *zap.Logger }

func (n logNotifier) Notify(msg string) { n.log.Info(msg) }

// serve: consume the configured motion source headless until interrupted.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Clear the persisted display on shakes without a keypad",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWire(app.WireOptions{Notifier: logNotifier{log: logger}})
			if err != nil {
				return err
			}
			defer w.Close()
			if w.Motion == nil && !cfg.Listening() {
				return fmt.Errorf("nothing to serve: set motion.source or metrics.enabled in %s", app.ConfigFileName)
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			if w.Motion != nil {
				g.Go(func() error { return w.Calculator.Run(ctx, w.Motion) })
			}
			g.Go(func() error { return w.Serve(ctx) })

			err = g.Wait()
			if perr := w.Calculator.Pause(); err == nil {
				err = perr
			}
			logger.Info("stopped", zap.String("display", w.Calculator.State().Display))
			return err
		},
	}
}
