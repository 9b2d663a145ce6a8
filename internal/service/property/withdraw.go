package property

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

// Withdraw takes an available property off the market. Under-contract and
// sold properties cannot be withdrawn; the attempt fails naming the
// rejected edge.
func (s *Service) Withdraw(ctx context.Context, input WithdrawInput) (*domain.Property, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.transition(ctx, input.PropertyID, domain.PropertyStatusWithdrawn, "property withdrawn")
}

// Unwithdraw returns a withdrawn property to the market. This is the single
// allowed exit from WITHDRAWN.
func (s *Service) Unwithdraw(ctx context.Context, input UnwithdrawInput) (*domain.Property, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.transition(ctx, input.PropertyID, domain.PropertyStatusAvailable, "property returned to market")
}

func (s *Service) transition(ctx context.Context, propertyID uuid.UUID, target domain.PropertyStatus, msg string) (*domain.Property, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor_id", "missing from context")
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	var (
		updated  *domain.Property
		oldState domain.PropertyStatus
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.properties.GetByID(txCtx, propertyID)
		if err != nil {
			return fmt.Errorf("get property: %w", err)
		}
		if current.IsArchived() {
			return fmt.Errorf("property %s: %w", current.ID, domain.ErrArchived)
		}

		if err := domain.ValidatePropertyTransition(current.Status, target); err != nil {
			return err
		}

		updated, err = s.properties.UpdateStatus(txCtx, propertyID, target, current.Version)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		oldState = current.Status

		change := domain.Change("status", current.Status.String(), target.String())
		return s.audit.Append(txCtx, []domain.AuditEntry{entryFor(updated.ID, actorID, change)})
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(notify.Event{
		EntityType: domain.EntityTypeProperty,
		EntityID:   propertyID,
		OldState:   oldState.String(),
		NewState:   target.String(),
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})

	s.log.InfoContext(ctx, msg,
		slog.String("property_id", propertyID.String()),
		slog.String("from", oldState.String()),
		slog.String("to", target.String()),
	)

	return updated, nil
}
