package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shakecalc/internal/app"
)

var (
	home       string
	passphrase string
	backend    string
	verbose    bool

	cfg    *app.Config
	logger *zap.Logger
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "shakecalc",
		Short:        "Keypad calculator that clears when shaken",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				home = os.Getenv("SHAKECALC_HOME")
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".shakecalc")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			c, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			if backend != "" {
				c.Store.Backend = backend
			}
			if passphrase != "" {
				c.Store.Passphrase = passphrase
			}
			if err := c.Validate(); err != nil {
				return err
			}
			cfg = c

			// The keypad owns the terminal, so it logs to a file.
			logger, err = app.NewLogger(cfg, verbose, cmd == cmd.Root())
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runKeypad,
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.shakecalc)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase sealing the preferences file")
	root.PersistentFlags().StringVar(&backend, "store", "", "store backend: file, sqlite or memory")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(evalCmd(), pressCmd(), lastCmd(), clearCmd(), shakeCmd(), serveCmd(), initCmd())
	return root
}

// openWire builds the app and restores the persisted display.
func openWire(opts app.WireOptions) (*app.Wire, error) {
	opts.Log = logger
	w, err := app.NewWire(cfg, opts)
	if err != nil {
		return nil, err
	}
	if err := w.Calculator.Load(); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}
