package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/config"
	httpserver "fintrack/internal/http"
	"fintrack/internal/insight"
	applog "fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// .env is optional; containers pass real env vars.
		applog.New(applog.DefaultConfig()).Debug("No .env file loaded", "error", err)
	}

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.WithComponent(applog.ComponentStorage).Error("Failed to open ledger store", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	ledger := services.NewLedgerService(repo, nil)
	generator := insight.NewGeminiClient(cfg.GeminiModel)
	insights := services.NewInsightService(repo, generator, nil, cfg.InsightTimeout)

	server := httpserver.NewServer(":"+cfg.Port, ledger, insights, cfg.ResetEnabled)
	server.ReadTimeout = 15 * time.Second
	server.WriteTimeout = 60 * time.Second
	server.IdleTimeout = 120 * time.Second
	server.MaxHeaderBytes = 1 << 20

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.WithComponent(applog.ComponentHTTP).Info("Server listening",
			"addr", server.Addr,
			"reset_enabled", cfg.ResetEnabled)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
