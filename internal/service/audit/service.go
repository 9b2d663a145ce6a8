// Package audit exposes read access to the append-only change history.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

type auditReader interface {
	Query(ctx context.Context, entityID uuid.UUID, q domain.AuditQuery) ([]domain.AuditEntry, error)
}

// Service provides audit trail queries.
type Service struct {
	audit   auditReader
	log     *slog.Logger
	timeout time.Duration
}

// NewService creates a new audit service.
func NewService(log *slog.Logger, audit auditReader, timeout time.Duration) *Service {
	return &Service{
		audit:   audit,
		log:     log.With("service", "audit"),
		timeout: timeout,
	}
}

// Timeline returns an entity's change history in commit order. The
// (Since, AfterSeq) cursor resumes a previous read; pass the last entry's
// CreatedAt and Seq to fetch the next page. Entries for archived entities
// stay readable.
func (s *Service) Timeline(ctx context.Context, entityID uuid.UUID, q domain.AuditQuery) ([]domain.AuditEntry, error) {
	if entityID == uuid.Nil {
		return nil, domain.NewValidationError("entity_id", "must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.audit.Query(ctx, entityID, q)
}
