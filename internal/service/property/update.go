package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/pkg/ctxutil"
)

// Update applies a partial update under optimistic concurrency. The caller's
// expected version must match the stored row or the call fails with
// domain.ErrVersionConflict and no field changes.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Property, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor_id", "missing from context")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	var updated *domain.Property
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.properties.GetByID(txCtx, input.PropertyID)
		if err != nil {
			return fmt.Errorf("get property: %w", err)
		}
		if current.IsArchived() {
			return fmt.Errorf("property %s: %w", current.ID, domain.ErrArchived)
		}

		if input.Params.IsEmpty() {
			updated = current
			return nil
		}

		updated, err = s.properties.Update(txCtx, input.PropertyID, input.Params, input.ExpectedVersion)
		if err != nil {
			return fmt.Errorf("update property: %w", err)
		}

		changes := diffProperty(current, updated)
		if len(changes) == 0 {
			return nil
		}
		return s.audit.Append(txCtx, entriesFor(updated.ID, actorID, changes))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "property updated",
		slog.String("property_id", input.PropertyID.String()),
	)

	return updated, nil
}

// diffProperty returns one change per field whose value actually moved.
func diffProperty(old, new *domain.Property) []domain.FieldChange {
	var changes []domain.FieldChange

	if oldV, newV := addressValue(old.Address), addressValue(new.Address); oldV != newV {
		changes = append(changes, domain.Change("address", oldV, newV))
	}
	if old.Price != new.Price {
		changes = append(changes, domain.Change("price", priceValue(old.Price), priceValue(new.Price)))
	}
	if oldV, newV := descriptionValue(old.Description), descriptionValue(new.Description); oldV != newV {
		changes = append(changes, domain.Change("description", oldV, newV))
	}

	return changes
}
