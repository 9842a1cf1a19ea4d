package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shakecalc/internal/calc"
)

// eval <expression>: evaluate left to right without touching the display.
func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression left to right (no precedence)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := calc.Evaluate(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), calc.Format(v))
			return nil
		},
	}
}
