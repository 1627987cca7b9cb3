// Package backend assembles a ready-to-use store and export service from
// application configuration.
package backend

import (
	"context"
	"fmt"

	"uscite/internal/config"
	"uscite/internal/export"
	"uscite/internal/log"
	"uscite/internal/storage"
	"uscite/internal/store"
)

// Result contains the assembled components and a cleanup function.
type Result struct {
	Store   *store.Store
	Exports *export.Service
	Cleanup func() error
}

// Factory creates backends based on configuration.
type Factory struct {
	logger *log.Logger
}

func NewFactory(logger *log.Logger) *Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Factory{logger: logger.WithComponent(log.ComponentBackend)}
}

// Create selects the repository from config, loads the store and wires the
// export service. The store arrives fully loaded; a corrupt or invalid
// backing file fails here, before any caller can mutate anything.
func (f *Factory) Create(ctx context.Context, cfg *config.Config) (*Result, error) {
	repo, err := f.repository(cfg)
	if err != nil {
		return nil, err
	}

	st := store.New(repo, f.logger)
	if err := st.Load(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("load store: %w", err)
	}

	exports := export.NewService(cfg.ExportDir, cfg.SpreadsheetExport, f.logger)

	f.logger.InfoContext(ctx, "backend initialized",
		log.FieldBackend, cfg.DataBackend,
		log.FieldCount, st.Len(),
		"spreadsheet_export", exports.SpreadsheetAvailable())

	return &Result{
		Store:   st,
		Exports: exports,
		Cleanup: st.Close,
	}, nil
}

func (f *Factory) repository(cfg *config.Config) (store.Repository, error) {
	switch cfg.DataBackend {
	case config.BackendFile:
		return storage.NewFileRepository(cfg.ExpensesFile, f.logger), nil
	case config.BackendSQLite:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath, f.logger)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite repository: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
