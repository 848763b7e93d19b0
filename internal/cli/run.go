package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sllist/internal/script"
)

var errStdinFormat = errors.New("reading a script from stdin requires --format yaml or --format jsonl")

func newRunCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "run <script|->",
		Short: "Run a YAML or JSON Lines script",
		Long: `Run reads a script of list operations and applies it step by step.

The format follows the file extension (.yaml, .yml, .jsonl, .json) unless
--format is given. Use "-" to read the script from stdin; --format is then
required.

YAML scripts hold a list of steps:

  steps:
    - op: append
      args: [1]
    - list: other
      op: push
      args: [2]
    - op: concat
      other: other
    - op: display

JSON Lines scripts hold one step object per line:

  {"op":"append","args":[1]}
  {"op":"display"}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := readScript(cmd, args[0], format)
			if err != nil {
				return err
			}
			return a.runSteps(cmd.Context(), cmd.OutOrStdout(), steps)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "script format: yaml or jsonl (required for stdin)")
	return cmd
}

// readScript parses the script named by arg, or stdin for "-".
func readScript(cmd *cobra.Command, arg, format string) ([]script.Step, error) {
	var (
		steps []script.Step
		err   error
	)
	switch {
	case arg == "-":
		if format == "" {
			return nil, userError(errStdinFormat)
		}
		steps, err = script.Parse(cmd.InOrStdin(), format)
	case format != "":
		steps, err = parseFileAs(arg, format)
	default:
		steps, err = script.ParseFile(arg)
	}

	if err == nil {
		return steps, nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return nil, sysError(err)
	}
	return nil, userError(err)
}

func parseFileAs(path, format string) ([]script.Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return script.Parse(f, format)
}
