package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"tally/internal/config"
	"tally/internal/gateway"
	"tally/internal/service"
	"tally/internal/store"
)

type App struct {
	Service *service.TransactionService
	Gateway *gateway.Gateway
	Store   store.Repository
}

// NewApp wires config, storage backend and core logic, then returns the
// App entity with a cleanup func.
func NewApp(cfg *config.Config, migrationsFS fs.FS, log zerolog.Logger) (*App, func(), error) {
	repo, err := newRepository(cfg, migrationsFS, log)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewTransactionService(repo)

	cleanup := func() {
		if err := repo.Close(); err != nil {
			fmt.Printf("Error closing store: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Gateway: gateway.New(svc, log),
		Store:   repo,
	}, cleanup, nil
}

func newRepository(cfg *config.Config, migrationsFS fs.FS, log zerolog.Logger) (store.Repository, error) {
	switch cfg.Database.Backend {
	case "memory":
		log.Debug().Str("backend", "memory").Msg("ledger backend initialized")
		return store.NewMemoryStore(), nil
	case "sqlite", "":
		dbPath := cfg.Database.Path
		if dbPath == "" {
			appDir, err := getAppDataDir()
			if err != nil {
				return nil, err
			}
			dbPath = filepath.Join(appDir, "tally.db")
		}

		repo, err := store.NewSQLiteStore(dbPath, migrationsFS)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Debug().Str("backend", "sqlite").Str("path", dbPath).Msg("ledger backend initialized")
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown database backend: %q (must be sqlite or memory)", cfg.Database.Backend)
	}
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tally"), nil
	}

	return filepath.Join(configDir, "tally"), nil
}
