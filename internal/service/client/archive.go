package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/pkg/ctxutil"
)

// Archive soft-archives a client. The record and its history stay readable;
// only new links and mutations are refused from then on. Archiving twice
// fails with domain.ErrArchived.
func (s *Service) Archive(ctx context.Context, input ArchiveInput) (*domain.Client, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor_id", "missing from context")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	var archived *domain.Client
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.clients.GetByID(txCtx, input.ClientID)
		if err != nil {
			return fmt.Errorf("get client: %w", err)
		}
		if current.IsArchived() {
			return fmt.Errorf("client %s: %w", current.ID, domain.ErrArchived)
		}

		archived, err = s.clients.Archive(txCtx, input.ClientID)
		if err != nil {
			return fmt.Errorf("archive client: %w", err)
		}

		change := domain.Change("archived_at", "", archived.ArchivedAt.UTC().Format(time.RFC3339))
		return s.audit.Append(txCtx, []domain.AuditEntry{entryFor(archived.ID, actorID, change)})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client archived",
		slog.String("client_id", input.ClientID.String()),
	)

	return archived, nil
}
