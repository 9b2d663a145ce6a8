// Command audit-retention prunes audit entries older than the configured
// retention period. It is intended to be invoked by an external cron job,
// not as an in-process goroutine. With retention "forever" it exits
// without touching anything.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	postgres "github.com/oakline/realty-backend/internal/adapter/postgres"
	"github.com/oakline/realty-backend/internal/adapter/postgres/audit"
	"github.com/oakline/realty-backend/internal/app"
	"github.com/oakline/realty-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	retention, expires := cfg.Audit.RetentionDuration()
	if !expires {
		logger.Info("retention is forever, nothing to prune")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	auditRepo := audit.New(pool)

	threshold := time.Now().UTC().Add(-retention)

	deleted, err := auditRepo.PruneBefore(ctx, threshold)
	if err != nil {
		logger.Error("prune failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("prune completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
