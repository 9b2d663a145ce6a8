package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/internal/notify"
	"github.com/oakline/realty-backend/pkg/ctxutil"
)

// Relist returns an under-contract property to the market after a contract
// falls through. The active UNDER_CONTRACT link demotes to INTERESTED, the
// only permitted reverse transition in the ledger. A PURCHASED link cannot
// be relisted; the attempt fails on the SOLD -> AVAILABLE edge.
func (s *Service) Relist(ctx context.Context, input RelistInput) (*domain.Property, error) {
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
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		prop, err := s.properties.GetForUpdate(txCtx, input.PropertyID)
		if err != nil {
			return fmt.Errorf("get property: %w", err)
		}

		if err := domain.ValidatePropertyTransition(prop.Status, domain.PropertyStatusAvailable); err != nil {
			return err
		}

		active, err := s.links.GetActiveContract(txCtx, prop.ID)
		if err != nil {
			return fmt.Errorf("get active contract: %w", err)
		}

		demoted, err := s.links.Demote(txCtx, active.ID)
		if err != nil {
			return fmt.Errorf("demote link: %w", err)
		}

		updated, err = s.properties.UpdateStatus(txCtx, prop.ID, domain.PropertyStatusAvailable, prop.Version)
		if err != nil {
			return fmt.Errorf("update property status: %w", err)
		}

		oldState = prop.Status

		kindChange := domain.Change("kind", active.Kind.String(), demoted.Kind.String())
		return s.audit.Append(txCtx, []domain.AuditEntry{
			entryFor(domain.EntityTypeRelationship, active.ID, actorID, kindChange),
			statusEntry(prop.ID, prop.Status, domain.PropertyStatusAvailable, actorID),
		})
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(notify.Event{
		EntityType: domain.EntityTypeProperty,
		EntityID:   input.PropertyID,
		OldState:   oldState.String(),
		NewState:   domain.PropertyStatusAvailable.String(),
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})

	s.log.InfoContext(ctx, "property relisted",
		slog.String("property_id", input.PropertyID.String()),
	)

	return updated, nil
}
