// Package client implements client intake and lifecycle management. Every
// mutation commits its audit entries in the same transaction; stage changes
// additionally notify subscribers after the commit.
package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/internal/notify"
)

type clientRepo interface {
	Create(ctx context.Context, c domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ClientUpdateParams, expectedVersion int64) (*domain.Client, error)
	UpdateStage(ctx context.Context, id uuid.UUID, stage domain.LifecycleStage, expectedVersion int64) (*domain.Client, error)
	Archive(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error)
}

type auditAppender interface {
	Append(ctx context.Context, entries []domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type stageDispatcher interface {
	Dispatch(event notify.Event)
}

// Service provides client operations.
type Service struct {
	clients    clientRepo
	audit      auditAppender
	tx         txManager
	dispatcher stageDispatcher
	log        *slog.Logger
	timeout    time.Duration
}

// NewService creates a new client service.
func NewService(
	log *slog.Logger,
	clients clientRepo,
	audit auditAppender,
	tx txManager,
	dispatcher stageDispatcher,
	timeout time.Duration,
) *Service {
	return &Service{
		clients:    clients,
		audit:      audit,
		tx:         tx,
		dispatcher: dispatcher,
		log:        log.With("service", "client"),
		timeout:    timeout,
	}
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}
