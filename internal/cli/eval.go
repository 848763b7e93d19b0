package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sllist/internal/script"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <step>...",
		Short: "Run steps given on the command line",
		Long: `Eval applies steps written as [list.]op[:arg[,arg...]].

For concat and copy the argument names the other list.`,
		Example: `  sllist eval append:1 append:2 append:3 reverse display
  sllist eval a.append:1 b.append:2 a.concat:b a.display
  sllist --type string eval push:hello insertAfter:hello,world display`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := script.ParseInline(args)
			if err != nil {
				return userError(err)
			}
			return a.runSteps(cmd.Context(), cmd.OutOrStdout(), steps)
		},
	}
}
