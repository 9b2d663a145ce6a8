// Package app wires the application together: configuration, logging,
// storage, the notification dispatcher, and the domain services.
package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/oakline/realty-backend/internal/adapter/postgres"
	auditrepo "github.com/oakline/realty-backend/internal/adapter/postgres/audit"
	clientrepo "github.com/oakline/realty-backend/internal/adapter/postgres/client"
	propertyrepo "github.com/oakline/realty-backend/internal/adapter/postgres/property"
	relationshiprepo "github.com/oakline/realty-backend/internal/adapter/postgres/relationship"
	"github.com/oakline/realty-backend/internal/config"
	"github.com/oakline/realty-backend/internal/notify"
	auditsvc "github.com/oakline/realty-backend/internal/service/audit"
	clientsvc "github.com/oakline/realty-backend/internal/service/client"
	"github.com/oakline/realty-backend/internal/service/ledger"
	propertysvc "github.com/oakline/realty-backend/internal/service/property"
)

// App holds the assembled services and the resources they own.
type App struct {
	Clients    *clientsvc.Service
	Properties *propertysvc.Service
	Ledger     *ledger.Service
	Audit      *auditsvc.Service

	pool       *pgxpool.Pool
	dispatcher *notify.Dispatcher
	log        *slog.Logger
}

// New connects to the database and assembles the service graph.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	clients := clientrepo.New(pool)
	properties := propertyrepo.New(pool)
	relationships := relationshiprepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	notifier := notify.NewSlogNotifier(log)
	dispatcher := notify.NewDispatcher(cfg.Notify, notifier, audit, log)

	timeout := cfg.Database.QueryTimeout

	return &App{
		Clients:    clientsvc.NewService(log, clients, audit, tx, dispatcher, timeout),
		Properties: propertysvc.NewService(log, properties, audit, tx, dispatcher, timeout),
		Ledger:     ledger.NewService(log, properties, clients, relationships, audit, tx, dispatcher, timeout),
		Audit:      auditsvc.NewService(log, audit, timeout),
		pool:       pool,
		dispatcher: dispatcher,
		log:        log,
	}, nil
}

// Close drains the dispatcher and releases the connection pool. Call once
// when shutting down.
func (a *App) Close() {
	a.dispatcher.Close()
	a.pool.Close()
}

// Run is the daemon entry point. It loads configuration, assembles the
// application, and blocks until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := NewLogger(cfg.Log)

	log.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	if retention, expires := cfg.Audit.RetentionDuration(); expires {
		log.Info("audit retention configured", slog.Duration("retention", retention))
	}

	<-ctx.Done()
	log.Info("shutting down")

	return nil
}
