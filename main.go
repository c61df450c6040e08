package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/example/sunnahtracker/internal/config"
	"github.com/example/sunnahtracker/internal/database"
	"github.com/example/sunnahtracker/internal/excel"
	"github.com/example/sunnahtracker/internal/logging"
	"github.com/example/sunnahtracker/internal/scheduler"
	"github.com/example/sunnahtracker/internal/storage"
	"github.com/example/sunnahtracker/internal/tracker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	logger := logging.New(cfg.LogLevel)

	// Signal channel and a cancellable root context
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Fatal("failed to open store", "type", cfg.DBType, "err", err)
	}
	defer closeStore()

	app := tracker.New(store, logger)
	if err := app.Initialize(ctx); err != nil {
		// engines keep working from memory; the next successful write catches up
		logger.Warn("initialization finished with errors", "err", err)
	}

	if cfg.CatalogImportPath != "" {
		importCatalog(ctx, cfg, app, logger)
	}

	sched := scheduler.New(app, scheduler.NewLogNotifier(logger.WithPrefix("reminder")), logger.WithPrefix("scheduler"), scheduler.Options{
		StartHour: cfg.NotificationStartHour,
		EndHour:   cfg.NotificationEndHour,
		Location:  time.Local,
	})
	if err := sched.Start(ctx); err != nil {
		logger.Fatal("failed to start scheduler", "err", err)
	}

	done := make(chan struct{})
	go func() {
		sig := <-sigChan
		logger.Info("received signal", "signal", sig)
		cancel()

		// Give running jobs a bounded time to finish
		stopped := make(chan struct{})
		go func() {
			sched.Stop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(5 * time.Second):
			logger.Warn("scheduler did not stop in time")
		}
		close(done)
	}()

	logger.Info("tracker running, press Ctrl+C to stop", "today", app.Today(), "user", app.UserID())
	<-done
	logger.Info("tracker stopped")
}

func openStore(cfg *config.Config) (storage.Store, func(), error) {
	if cfg.DBType == "memory" {
		return storage.NewMemoryStore(), func() {}, nil
	}
	db, err := database.Connect(database.Config{Type: cfg.DBType, Path: cfg.DBPath, URL: cfg.DatabaseURL})
	if err != nil {
		return nil, nil, err
	}
	return database.NewKVRepository(db), func() { _ = db.Close() }, nil
}

func importCatalog(ctx context.Context, cfg *config.Config, app *tracker.Tracker, logger *log.Logger) {
	importConfig := excel.DefaultImportConfig()
	importConfig.FilePath = cfg.CatalogImportPath
	importConfig.SheetName = cfg.CatalogImportSheet

	result, err := excel.ImportSunnahs(ctx, importConfig, app.Catalog())
	if err != nil {
		logger.Error("catalog import failed", "path", cfg.CatalogImportPath, "err", err)
		return
	}
	logger.Info("catalog imported",
		"processed", result.TotalProcessed, "created", result.Created,
		"updated", result.Updated, "skipped", result.Skipped)
	for _, msg := range result.Errors {
		logger.Warn("import row rejected", "detail", msg)
	}
}
