// Package ledger implements the client-property relationship ledger and the
// property-side workflow transitions it drives. The check-then-insert for a
// contract claim runs inside one transaction under an exclusive lock on the
// property row, so concurrent claims on the same property serialize and the
// first committer wins.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/internal/notify"
)

type propertyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PropertyStatus, expectedVersion int64) (*domain.Property, error)
	Archive(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}

type clientRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

type relationshipRepo interface {
	Create(ctx context.Context, rel domain.Relationship) (*domain.Relationship, error)
	GetActiveContract(ctx context.Context, propertyID uuid.UUID) (*domain.Relationship, error)
	Demote(ctx context.Context, id uuid.UUID) (*domain.Relationship, error)
	Promote(ctx context.Context, id uuid.UUID) (*domain.Relationship, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Relationship, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*domain.Relationship, error)
}

type auditAppender interface {
	Append(ctx context.Context, entries []domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type transitionDispatcher interface {
	Dispatch(event notify.Event)
}

// Service provides relationship ledger operations.
type Service struct {
	properties propertyRepo
	clients    clientRepo
	links      relationshipRepo
	audit      auditAppender
	tx         txManager
	dispatcher transitionDispatcher
	log        *slog.Logger
	timeout    time.Duration
}

// NewService creates a new ledger service. timeout bounds every store
// operation; expired deadlines surface as domain.ErrTimeout.
func NewService(
	log *slog.Logger,
	properties propertyRepo,
	clients clientRepo,
	links relationshipRepo,
	audit auditAppender,
	tx txManager,
	dispatcher transitionDispatcher,
	timeout time.Duration,
) *Service {
	return &Service{
		properties: properties,
		clients:    clients,
		links:      links,
		audit:      audit,
		tx:         tx,
		dispatcher: dispatcher,
		log:        log.With("service", "ledger"),
		timeout:    timeout,
	}
}

// bound applies the store operation deadline.
func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}
