package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"waterlog/internal/adapter/csvstore"
	"waterlog/internal/adapter/memory"
	"waterlog/internal/adapter/sqlite"
	"waterlog/internal/adapter/tui"
	"waterlog/internal/app"
	"waterlog/internal/config"
	"waterlog/internal/domain"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "waterlog: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(config.DefaultPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	repo, closer, err := openRepository(cfg.Storage)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	logger.Info("storage opened",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("path", cfg.Storage.Path))

	store := app.NewDatasetStore(repo, logger)
	if _, err := store.Load(context.Background()); err != nil {
		logger.Error("dataset unreadable", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return err
	}

	engine := app.NewSuggestionEngine(cfg.Suggestion.MinWaterFloor)
	sessionSvc := app.NewSessionService(store, engine, cfg.Suggestion.RequireBaseline, logger)
	chartsSvc := app.NewChartsService(store, engine)

	if _, err := tea.NewProgram(tui.New(sessionSvc, chartsSvc, cfg.Chart.Points)).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// newLogger writes JSON logs to the configured file; the terminal belongs to the form.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{cfg.Log.Path}
	zc.ErrorOutputPaths = []string{cfg.Log.Path}
	return zc.Build()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openRepository(sc config.StorageConfig) (domain.DatasetRepository, io.Closer, error) {
	switch sc.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(sc.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
		return db, db, nil
	case config.DriverMemory:
		return memory.New(), nopCloser{}, nil
	default:
		s, err := csvstore.Open(sc.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", sc.Path, err)
		}
		return s, nopCloser{}, nil
	}
}
