package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/cardport/internal/config"
	"github.com/thenoetrevino/cardport/internal/database"
	"github.com/thenoetrevino/cardport/internal/logging"
	cardservice "github.com/thenoetrevino/cardport/internal/services/card"
	"github.com/thenoetrevino/cardport/internal/services/importer"
	userservice "github.com/thenoetrevino/cardport/internal/services/user"
	"github.com/thenoetrevino/cardport/internal/storage"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	cfg    *config.Config
	repo   database.DataStore
	blobs  storage.Store
	logger *slog.Logger

	// Resources released by Close, in order
	closers []io.Closer

	UserService userservice.Service
	CardService cardservice.Service
}

// New creates a new App with all services initialized.
func New(cfg *config.Config, repo database.DataStore, blobs storage.Store, opts ...Option) *App {
	ac := &appConfig{logger: logging.Logger}
	for _, opt := range opts {
		opt(ac)
	}

	return &App{
		cfg:         cfg,
		repo:        repo,
		blobs:       blobs,
		logger:      ac.logger,
		closers:     ac.closers,
		UserService: userservice.NewService(repo),
		CardService: cardservice.NewService(repo),
	}
}

// Open connects the database and blob store named by cfg and builds the App.
// The caller must Close it.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, dialect, err := database.InitDB(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	blobs, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize blob storage: %w", err)
	}

	opts = append(opts, WithCloser(db))
	return New(cfg, database.NewRepository(db, dialect), blobs, opts...), nil
}

// NewImporter builds an importer reporting to progress (which may be nil)
func (a *App) NewImporter(progress importer.ProgressReporter) importer.Service {
	return importer.New(a.repo, a.blobs, importer.Options{
		Import:   a.cfg.Import,
		Progress: progress,
		Logger:   a.logger,
	})
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Blobs returns the attachment blob store
func (a *App) Blobs() storage.Store {
	return a.blobs
}

// Config returns the configuration the app was built from
func (a *App) Config() *config.Config {
	return a.cfg
}

// Close releases the database and any other registered resources
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
