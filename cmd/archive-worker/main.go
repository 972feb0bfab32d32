// The archive worker runs the monthly archival sweep: at 02:00 on the first
// of each month it selects the previous month's records and hands them to
// the configured sink (log, amqp, or sheets).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fintrack/internal/amqp"
	"fintrack/internal/archive"
	"fintrack/internal/config"
	applog "fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

func main() {
	godotenv.Load()

	logger := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentWorker)
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open ledger store", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	archiver, cleanup, err := buildArchiver(ctx, cfg)
	if err != nil {
		logger.Error("Failed to build archive sink", "sink", cfg.ArchiveSink, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	sweeper := services.NewSweeper(repo, archiver, nil)

	logger.Info("Archive worker started", "sink", cfg.ArchiveSink)

	for {
		next := services.NextRun(time.Now())
		logger.Info("Next sweep scheduled", "at", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info("Archive worker stopping")
			return
		case <-timer.C:
		}

		// A failed sweep is logged and retried at the next monthly tick.
		if err := sweeper.Run(ctx); err != nil {
			logger.Error("Archival sweep failed", "error", err)
		}
	}
}

// buildArchiver selects the sink configured via ARCHIVE_SINK. The returned
// cleanup closes any connection the sink holds.
func buildArchiver(ctx context.Context, cfg *config.Config) (services.Archiver, func(), error) {
	switch cfg.ArchiveSink {
	case "amqp":
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			return nil, nil, err
		}
		return archive.NewAMQPArchiver(client), func() { client.Close() }, nil
	case "sheets":
		archiver, err := archive.NewSheetsArchiverFromEnv(ctx, cfg.SheetsSpreadsheetID, cfg.SheetsSheetName)
		if err != nil {
			return nil, nil, err
		}
		return archiver, func() {}, nil
	default:
		return archive.NewLogArchiver(), func() {}, nil
	}
}
