package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sllist/internal/config"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and a config.yaml holding the default settings. An existing file is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.WriteDefault(a.configDir)
			if err != nil {
				return sysError(err)
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
			}
			return nil
		},
	}
}
