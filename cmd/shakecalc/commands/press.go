package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shakecalc/internal/app"
	"shakecalc/internal/keypad"
)

// press <key>...: apply keys to the persisted display.
func pressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "press <key>...",
		Short: "Press keys and print the display",
		Long: `Press keys against the persisted display and print the result.

Keys are 0-9 . + - * / = C DEL. A single argument such as 12+3= is split
into one key per character. Use -- before a leading minus.`,
		Example: "  shakecalc press 12+3=\n  shakecalc press 7 x 6 =\n  shakecalc press DEL",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := keypad.ParseKeys(args)
			if err != nil {
				return err
			}
			w, err := openWire(app.WireOptions{})
			if err != nil {
				return err
			}
			defer w.Close()

			st := w.Calculator.PressAll(keys)
			if err := w.Calculator.Pause(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.Display)
			return nil
		},
	}
}

// clear: reset the display to 0.
func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the persisted display to 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWire(app.WireOptions{})
			if err != nil {
				return err
			}
			defer w.Close()

			st := w.Calculator.Press(keypad.Clear)
			if err := w.Calculator.Pause(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.Display)
			return nil
		},
	}
}
