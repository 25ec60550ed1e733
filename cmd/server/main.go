package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/printhaus/printshop/internal/albums"
	"github.com/printhaus/printshop/internal/auth"
	"github.com/printhaus/printshop/internal/carts"
	"github.com/printhaus/printshop/internal/config"
	"github.com/printhaus/printshop/internal/database"
	"github.com/printhaus/printshop/internal/mockups"
	"github.com/printhaus/printshop/internal/orders"
	"github.com/printhaus/printshop/internal/services"
	"github.com/printhaus/printshop/internal/storage"
	"github.com/printhaus/printshop/internal/users"
	"github.com/printhaus/printshop/pkg/logging"
)

type Application struct {
	config *config.Config
	db     *sql.DB
	logger *slog.Logger

	auth     auth.System
	users    users.System
	services services.System
	orders   orders.System
	carts    carts.System
	albums   albums.System
	mockups  mockups.System
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := cfg.Finalize(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(&cfg.Logging)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to create storage", "error", err)
		os.Exit(1)
	}
	if err := store.Start(); err != nil {
		logger.Error("failed to start storage", "error", err)
		os.Exit(1)
	}

	app := &Application{
		config: cfg,
		db:     db,
		logger: logger,
	}

	app.users = users.New(db, logger, cfg.Pagination)
	app.auth = auth.New(app.users, cfg.Auth, logger)
	app.services = services.New(db, logger, cfg.Pagination)
	app.orders = orders.New(db, logger, cfg.Pagination)
	app.carts = carts.New(db, logger, cfg.Pagination)
	app.albums = albums.New(db, logger, cfg.Pagination)
	app.mockups = mockups.New(db, store, logger, cfg.Pagination, cfg.Imaging, cfg.Storage.MaxUploadSizeBytes())

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.routes(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	if err := <-shutdownError; err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
