// Package cli implements the sllist command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sllist/internal/config"
	"github.com/mesh-intelligence/sllist/internal/logger"
	"github.com/mesh-intelligence/sllist/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	elemType  string
	output    string
	logLevel  string
	logFormat string
	keepGoing bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags     rootFlags
	configDir string
	cfg       config.Config
	log       logger.Logger
}

// NewRootCmd creates the top-level "sllist" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.NewNoopLogger()}

	root := &cobra.Command{
		Use:   "sllist",
		Short: "Drive singly linked lists from operation scripts",
		Long: `sllist applies list operations (push, append, insert, delete, peek,
reverse, concat, copy, display) to named singly linked lists and prints
the results. Steps come from a YAML or JSON Lines script, or inline.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $SLLIST_CONFIG_DIR or the platform config dir)")
	pf.StringVar(&a.flags.elemType, "type", "", "element type: int or string")
	pf.StringVar(&a.flags.output, "output", "", "output mode: text or json")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: none, debug, info, warn, error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVar(&a.flags.keepGoing, "keep-going", false, "continue after a failing step")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newOpsCmd(a))
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newEvalCmd(a))

	return root
}

// setup resolves the config directory, loads configuration and builds the
// logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = dir

	cfg, err := config.Load(dir, cmd.Flags())
	if err != nil {
		return userError(fmt.Errorf("load config: %w", err))
	}
	a.cfg = cfg

	log, err := logger.NewLogger(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return userError(fmt.Errorf("build logger: %w", err))
	}
	a.log = log
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sllist:", err)
	}
	stop()
	os.Exit(exitCode(err))
}
