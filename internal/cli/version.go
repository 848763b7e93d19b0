package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sllist/internal/build"
)

const modulePath = "github.com/mesh-intelligence/sllist"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sllist version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "sllist v%s (commit %s)\nmodule: %s\n", build.Version, build.Commit, modulePath)
			return nil
		},
	}
}
