package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sllist/internal/config"
	"github.com/mesh-intelligence/sllist/internal/script"
)

// opRecord is the JSON form of an operation.
type opRecord struct {
	Name    string `json:"name"`
	Args    int    `json:"args"`
	Other   bool   `json:"other,omitempty"`
	Returns bool   `json:"returns,omitempty"`
	Usage   string `json:"usage"`
}

func newOpsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations a step may name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := script.Ops()
			out := cmd.OutOrStdout()

			if a.cfg.Output == config.OutputJSON {
				records := make([]opRecord, 0, len(ops))
				for _, op := range ops {
					records = append(records, opRecord(op))
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "OP\tARGS\tUSAGE")
			for _, op := range ops {
				argDesc := fmt.Sprint(op.Args)
				if op.Other {
					argDesc = "other"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", op.Name, argDesc, op.Usage)
			}
			return tw.Flush()
		},
	}
}
