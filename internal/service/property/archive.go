package property

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/pkg/ctxutil"
)

// Archive soft-archives a withdrawn property. Available and under-contract
// inventory must leave the market first; sold properties are archived by the
// sale itself.
func (s *Service) Archive(ctx context.Context, input ArchiveInput) (*domain.Property, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor_id", "missing from context")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	var archived *domain.Property
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.properties.GetByID(txCtx, input.PropertyID)
		if err != nil {
			return fmt.Errorf("get property: %w", err)
		}
		if current.IsArchived() {
			return fmt.Errorf("property %s: %w", current.ID, domain.ErrArchived)
		}
		if current.Status != domain.PropertyStatusWithdrawn {
			return domain.NewValidationError("status", "only withdrawn properties can be archived")
		}

		archived, err = s.properties.Archive(txCtx, input.PropertyID)
		if err != nil {
			return fmt.Errorf("archive property: %w", err)
		}

		change := domain.Change("archived_at", "", archived.ArchivedAt.UTC().Format(time.RFC3339))
		return s.audit.Append(txCtx, []domain.AuditEntry{entryFor(archived.ID, actorID, change)})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "property archived",
		slog.String("property_id", input.PropertyID.String()),
	)

	return archived, nil
}
