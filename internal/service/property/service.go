// Package property implements inventory management for listed properties.
// Status moves only through workflow transitions; descriptive fields update
// under optimistic concurrency.
package property

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/internal/notify"
)

type propertyRepo interface {
	Create(ctx context.Context, p domain.Property) (*domain.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PropertyUpdateParams, expectedVersion int64) (*domain.Property, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PropertyStatus, expectedVersion int64) (*domain.Property, error)
	Archive(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error)
}

type auditAppender interface {
	Append(ctx context.Context, entries []domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type statusDispatcher interface {
	Dispatch(event notify.Event)
}

// Service provides property operations.
type Service struct {
	properties propertyRepo
	audit      auditAppender
	tx         txManager
	dispatcher statusDispatcher
	log        *slog.Logger
	timeout    time.Duration
}

// NewService creates a new property service.
func NewService(
	log *slog.Logger,
	properties propertyRepo,
	audit auditAppender,
	tx txManager,
	dispatcher statusDispatcher,
	timeout time.Duration,
) *Service {
	return &Service{
		properties: properties,
		audit:      audit,
		tx:         tx,
		dispatcher: dispatcher,
		log:        log.With("service", "property"),
		timeout:    timeout,
	}
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}
