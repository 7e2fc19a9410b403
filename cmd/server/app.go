package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/flipwise/flipwise/internal/api"
	"github.com/flipwise/flipwise/internal/config"
	"github.com/flipwise/flipwise/internal/importer"
	"github.com/flipwise/flipwise/internal/platform/postgres"
	"github.com/flipwise/flipwise/internal/service"
	"github.com/flipwise/flipwise/internal/service/study_session"
	"github.com/flipwise/flipwise/internal/store"
)

// application holds the shared dependencies of the server so they can be
// released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	deckStore     store.DeckStore
	categoryStore store.CategoryStore
	wordStore     store.WordStore

	deckService     service.DeckService
	categoryService service.CategoryService
	wordService     service.WordService
	sessionService  study_session.Service

	sweeper *study_session.Sweeper
}

// newApplication wires stores, services and the session sweeper. The
// sweeper is created but not started.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.deckStore = postgres.NewPostgresDeckStore(db, logger)
	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.wordStore = postgres.NewPostgresWordStore(db, logger)

	var err error
	app.deckService, err = service.NewDeckService(app.deckStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck service: %w", err)
	}
	app.categoryService, err = service.NewCategoryService(app.deckStore, app.categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}
	app.wordService, err = service.NewWordService(app.categoryStore, app.wordStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create word service: %w", err)
	}

	sessionCfg, err := study_session.ConfigFromSettings(cfg.Study)
	if err != nil {
		return nil, fmt.Errorf("invalid study configuration: %w", err)
	}
	app.sessionService, err = study_session.NewService(app.wordService, sessionCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create study session service: %w", err)
	}
	app.sweeper = study_session.NewSweeper(app.sessionService, sessionCfg.SweepInterval, logger)

	logger.Info("application initialized",
		slog.Int("recency_window", cfg.Study.RecencyWindow),
		slog.Int("max_active_sessions", cfg.Study.MaxActiveSessions))
	return app, nil
}

// handlers builds the API handlers over the application services.
func (app *application) handlers() api.Handlers {
	importOptions := importer.DefaultOptions()
	importOptions.Sheet = app.config.Importer.Sheet
	importOptions.StartRow = app.config.Importer.StartRow

	return api.Handlers{
		Decks:      api.NewDeckHandler(app.deckService, app.logger),
		Categories: api.NewCategoryHandler(app.categoryService, app.logger),
		Words:      api.NewWordHandler(app.wordService, importOptions, app.logger),
		Sessions:   api.NewSessionHandler(app.sessionService, app.logger),
	}
}

// Run starts the sweeper and serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.sweeper.Start(); err != nil {
		app.cleanup()
		return err
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) shutdownTimeout() time.Duration {
	return time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
}

// cleanup stops background work and closes the database.
func (app *application) cleanup() {
	if app.sweeper != nil {
		app.sweeper.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
