package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shakecalc/internal/app"
)

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml to the home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(home, app.ConfigFileName)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists. use --force to overwrite", path)
			}
			if err := app.DefaultConfig(home).Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written.\nPath: %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	return cmd
}
