package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/flipwise/flipwise/internal/config"
	"github.com/flipwise/flipwise/internal/platform/postgres"
)

// setupAppDatabase opens and pings the configured database.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("database connection established",
		slog.Int("max_open_conns", cfg.Database.MaxOpenConns))
	return db, nil
}
