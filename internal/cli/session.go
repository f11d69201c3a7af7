package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/vending/internal/catalog"
	"github.com/mesh-intelligence/vending/internal/console"
	"github.com/mesh-intelligence/vending/internal/logging"
	"github.com/mesh-intelligence/vending/internal/memory"
	"github.com/mesh-intelligence/vending/internal/processor"
	"github.com/mesh-intelligence/vending/internal/sqlite"
	"github.com/mesh-intelligence/vending/pkg/types"
)

// openStore creates the catalog backend named by cfg.Backend.
func openStore(cfg types.Config) (types.Store, error) {
	switch cfg.Backend {
	case types.BackendSQLite:
		s, err := sqlite.NewStore()
		if err != nil {
			return nil, sysError(fmt.Errorf("open sqlite store: %w", err))
		}
		return s, nil
	case types.BackendMemory:
		return memory.NewStore(), nil
	default:
		return nil, userError(fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend))
	}
}

// runSession loads config, wires the catalog, processor, and console, and
// runs the interactive loop on the command's stdin and stdout.
func runSession(cmd *cobra.Command, flags *rootFlags) (err error) {
	_, cfg, err := effectiveConfig(flags)
	if err != nil {
		return err
	}
	logger := logging.New(cfg, cmd.ErrOrStderr())

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	cat := catalog.New(store)
	defer func() {
		if cerr := cat.Close(); cerr != nil && err == nil {
			err = sysError(fmt.Errorf("close store: %w", cerr))
		}
	}()

	proc := processor.New(cat, logger)
	logger.Info("session started", slog.String("session", proc.Session()))

	if cfg.Seed {
		out := proc.Handle(processor.Request{Token: string(processor.CommandSeed)})
		if out.Err != nil {
			return sysError(fmt.Errorf("seed catalog: %w", out.Err))
		}
	}

	c := console.New(proc, cmd.InOrStdin(), cmd.OutOrStdout(),
		console.WithPace(cfg.Pace),
		console.WithLogger(logger),
	)
	if err := c.Run(cmd.Context()); err != nil {
		if errors.Is(err, cmd.Context().Err()) {
			return nil
		}
		return sysError(fmt.Errorf("console: %w", err))
	}
	return nil
}
