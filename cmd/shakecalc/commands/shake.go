package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shakecalc/internal/app"
	"shakecalc/internal/motion"
)

// printNotifier writes notifications on their own line.
type printNotifier struct{ w io.Writer }

func (n printNotifier) Notify(msg string) { fmt.Fprintln(n.w, msg) }

// shake [file]: replay recorded samples, one "x,y,z" per line.
func shakeCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "shake [file]",
		Short: "Replay accelerometer samples and print the display",
		Long: `Replay accelerometer samples against the persisted display.

Samples are read from file, or stdin when file is - or absent, one
"x,y,z" reading in m/s^2 per line. Lines starting with # are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			out := cmd.OutOrStdout()
			w, err := openWire(app.WireOptions{Notifier: printNotifier{w: out}})
			if err != nil {
				return err
			}
			defer w.Close()

			src := motion.NewReaderSource(in, logger.Named("motion"))
			src.Strict = strict
			if err := w.Calculator.Run(cmd.Context(), src); err != nil {
				return err
			}
			if err := w.Calculator.Pause(); err != nil {
				return err
			}
			fmt.Fprintln(out, w.Calculator.State().Display)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on malformed samples instead of skipping them")
	return cmd
}
