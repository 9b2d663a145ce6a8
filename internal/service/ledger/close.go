package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/internal/notify"
	"github.com/oakline/realty-backend/pkg/ctxutil"
)

// Close completes the sale of an under-contract property. The holding link
// promotes to PURCHASED, the property moves to SOLD and is archived in the
// same transaction (sold inventory is retained, never deleted).
func (s *Service) Close(ctx context.Context, input CloseInput) (*domain.Property, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor_id", "missing from context")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	var (
		updated  *domain.Property
		oldState domain.PropertyStatus
		buyerID  uuid.UUID
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		prop, err := s.properties.GetForUpdate(txCtx, input.PropertyID)
		if err != nil {
			return fmt.Errorf("get property: %w", err)
		}

		if err := domain.ValidatePropertyTransition(prop.Status, domain.PropertyStatusSold); err != nil {
			return err
		}

		active, err := s.links.GetActiveContract(txCtx, prop.ID)
		if err != nil {
			return fmt.Errorf("get active contract: %w", err)
		}
		buyerID = active.ClientID

		promoted, err := s.links.Promote(txCtx, active.ID)
		if err != nil {
			return fmt.Errorf("promote link: %w", err)
		}

		sold, err := s.properties.UpdateStatus(txCtx, prop.ID, domain.PropertyStatusSold, prop.Version)
		if err != nil {
			return fmt.Errorf("update property status: %w", err)
		}

		updated, err = s.properties.Archive(txCtx, sold.ID)
		if err != nil {
			return fmt.Errorf("archive property: %w", err)
		}

		oldState = prop.Status

		kindChange := domain.Change("kind", active.Kind.String(), promoted.Kind.String())
		archiveChange := domain.Change("archived_at", "", updated.ArchivedAt.UTC().Format(time.RFC3339))
		return s.audit.Append(txCtx, []domain.AuditEntry{
			entryFor(domain.EntityTypeRelationship, active.ID, actorID, kindChange),
			statusEntry(prop.ID, prop.Status, domain.PropertyStatusSold, actorID),
			entryFor(domain.EntityTypeProperty, prop.ID, actorID, archiveChange),
		})
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(notify.Event{
		EntityType: domain.EntityTypeProperty,
		EntityID:   input.PropertyID,
		OldState:   oldState.String(),
		NewState:   domain.PropertyStatusSold.String(),
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})

	s.log.InfoContext(ctx, "sale closed",
		slog.String("property_id", input.PropertyID.String()),
		slog.String("client_id", buyerID.String()),
	)

	return updated, nil
}
