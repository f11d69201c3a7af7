// Package cli implements the vending command-line interface: the interactive
// session on the root command plus init, config, and version subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mesh-intelligence/vending/internal/paths"
	"github.com/mesh-intelligence/vending/pkg/types"
	"github.com/mesh-intelligence/vending/pkg/vending"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError pairs an error with the process exit code it should produce.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by a command to a process exit code.
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
	set       *pflag.FlagSet
}

// NewRootCmd creates the top-level "vending" command with global flags and
// all subcommands registered. Running it without a subcommand starts the
// interactive session.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:     "vending",
		Short:   "Interactive snack catalog manager",
		Long:    "vending manages an in-memory catalog of snacks: add, remove, list,\nand filter snacks by price from a menu-driven prompt.",
		Version: vending.Version,
		Args:    cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.String(flagBackend, types.DefaultBackend, "catalog backend: memory or sqlite")
	pf.Bool(flagSeed, false, "seed demonstration snacks at startup")
	pf.Duration(flagPace, types.DefaultPace, "pause after confirmations and at shutdown (0 disables)")
	pf.String(flagLogLevel, types.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.String(flagLogFormat, types.DefaultLogFormat, "log format: text or json")
	flags.set = pf

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(flags))
	root.AddCommand(newConfigCmd(flags))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir(flags *rootFlags) (string, error) {
	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return "", sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	return dir, nil
}
