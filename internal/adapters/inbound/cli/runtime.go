package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/prodcat/internal/adapters/outbound/config"
	"github.com/abdidvp/prodcat/internal/adapters/outbound/logging"
	"github.com/abdidvp/prodcat/internal/adapters/outbound/slot"
	"github.com/abdidvp/prodcat/internal/adapters/outbound/store"
	"github.com/abdidvp/prodcat/internal/application"
	"github.com/abdidvp/prodcat/internal/domain"
)

// runtime is the wired catalog one command invocation works against.
type runtime struct {
	cfg     domain.Config
	logger  *zap.Logger
	store   *store.JSONStore
	catalog *application.CatalogService
	closers []func()
}

// openRuntime opens the store and loads the catalog from it, seeding an
// absent slot. Call Close when the command is done.
func openRuntime(cmd *cobra.Command, opts *rootOptions) (*runtime, error) {
	rt, err := openStore(cmd, opts)
	if err != nil {
		return nil, err
	}

	rt.catalog, err = application.OpenCatalog(cmd.Context(),
		rt.store,
		application.WithLogger(rt.logger),
		application.WithLatency(rt.cfg.Latency),
	)
	if err != nil {
		rt.Close()
		return nil, err
	}
	return rt, nil
}

// openStore loads .prodcat.yaml and builds the logger, slot and store it
// names, without loading the catalog.
func openStore(cmd *cobra.Command, opts *rootOptions) (*runtime, error) {
	cfg, err := config.New().Load(opts.configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.ephemeral {
		cfg.Store.Backend = domain.BackendMemory
	}

	logger, err := logging.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logger}

	blob, err := rt.openSlot(cmd.Context())
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.store = store.New(blob, cfg.Store.Key)
	return rt, nil
}

func (rt *runtime) openSlot(ctx context.Context) (domain.BlobSlot, error) {
	rt.logger.Debug("opening slot",
		zap.String("backend", string(rt.cfg.Store.Backend)),
		zap.String("key", rt.cfg.Store.Key),
	)

	switch rt.cfg.Store.Backend {
	case domain.BackendMemory:
		return slot.NewMemory(), nil
	case domain.BackendPostgres:
		pg, err := slot.OpenPostgres(ctx, rt.cfg.Store.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening postgres slot: %w", err)
		}
		rt.closers = append(rt.closers, pg.Close)
		return pg, nil
	default:
		return slot.NewFile(rt.cfg.Store.Dir), nil
	}
}

// Close releases the slot and flushes the logger.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	_ = rt.logger.Sync()
}
