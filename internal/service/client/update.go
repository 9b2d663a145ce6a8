package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/pkg/ctxutil"
)

// Update applies a partial update under optimistic concurrency. The caller's
// expected version must match the stored row or the call fails with
// domain.ErrVersionConflict and no field changes. One audit entry per
// changed field commits with the update.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Client, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor_id", "missing from context")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	var updated *domain.Client
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.clients.GetByID(txCtx, input.ClientID)
		if err != nil {
			return fmt.Errorf("get client: %w", err)
		}
		if current.IsArchived() {
			return fmt.Errorf("client %s: %w", current.ID, domain.ErrArchived)
		}

		if input.Params.IsEmpty() {
			updated = current
			return nil
		}

		// Budget invariant holds across the merged result, not just the patch.
		budgetMin, budgetMax := current.BudgetMin, current.BudgetMax
		if input.Params.BudgetMin != nil {
			budgetMin = *input.Params.BudgetMin
		}
		if input.Params.BudgetMax != nil {
			budgetMax = *input.Params.BudgetMax
		}
		if budgetMin > budgetMax {
			return domain.NewValidationError("budget", "min must not exceed max")
		}

		updated, err = s.clients.Update(txCtx, input.ClientID, input.Params, input.ExpectedVersion)
		if err != nil {
			return fmt.Errorf("update client: %w", err)
		}

		changes := diffClient(current, updated)
		if len(changes) == 0 {
			return nil
		}
		return s.audit.Append(txCtx, entriesFor(updated.ID, actorID, changes))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client updated",
		slog.String("client_id", input.ClientID.String()),
	)

	return updated, nil
}

// diffClient returns one change per field whose value actually moved.
func diffClient(old, new *domain.Client) []domain.FieldChange {
	var changes []domain.FieldChange

	if old.Name != new.Name {
		changes = append(changes, domain.Change("name", old.Name, new.Name))
	}
	if old.BudgetMin != new.BudgetMin {
		changes = append(changes, domain.Change("budget_min", budgetValue(old.BudgetMin), budgetValue(new.BudgetMin)))
	}
	if old.BudgetMax != new.BudgetMax {
		changes = append(changes, domain.Change("budget_max", budgetValue(old.BudgetMax), budgetValue(new.BudgetMax)))
	}
	if oldV, newV := contactsValue(old.Contacts), contactsValue(new.Contacts); oldV != newV {
		changes = append(changes, domain.Change("contacts", oldV, newV))
	}
	if oldV, newV := preferencesValue(old.Preferences), preferencesValue(new.Preferences); oldV != newV {
		changes = append(changes, domain.Change("preferences", oldV, newV))
	}

	return changes
}
