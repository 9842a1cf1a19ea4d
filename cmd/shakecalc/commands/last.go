package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shakecalc/internal/app"
	"shakecalc/internal/domain"
)

func lastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Print the persisted display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWire(app.WireOptions{})
			if err != nil {
				return err
			}
			defer w.Close()

			v, ok, err := w.Prefs.GetString(domain.KeyLastResult)
			if err != nil {
				return err
			}
			if !ok {
				v = domain.DefaultDisplay
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
