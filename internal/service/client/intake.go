package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/pkg/ctxutil"
)

// Intake registers a new client at the start of the lifecycle funnel and
// records the initial field values in the audit trail.
func (s *Service) Intake(ctx context.Context, input IntakeInput) (*domain.Client, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor_id", "missing from context")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	c := domain.Client{
		ID:          uuid.New(),
		Name:        input.Name,
		Contacts:    input.Contacts,
		BudgetMin:   input.BudgetMin,
		BudgetMax:   input.BudgetMax,
		Preferences: input.Preferences,
		Stage:       domain.LifecycleStageNew,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Client
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.clients.Create(txCtx, c)
		if err != nil {
			return fmt.Errorf("create client: %w", err)
		}

		return s.audit.Append(txCtx, entriesFor(created.ID, actorID, intakeChanges(created)))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "client registered",
		slog.String("client_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// intakeChanges records every field the client arrived with. Empty optional
// fields are skipped so the trail stays readable.
func intakeChanges(c *domain.Client) []domain.FieldChange {
	changes := []domain.FieldChange{
		domain.Change("name", "", c.Name),
		domain.Change("stage", "", c.Stage.String()),
	}
	if c.BudgetMin != 0 || c.BudgetMax != 0 {
		changes = append(changes,
			domain.Change("budget_min", "", budgetValue(c.BudgetMin)),
			domain.Change("budget_max", "", budgetValue(c.BudgetMax)),
		)
	}
	if len(c.Contacts) > 0 {
		changes = append(changes, domain.Change("contacts", "", contactsValue(c.Contacts)))
	}
	if len(c.Preferences) > 0 {
		changes = append(changes, domain.Change("preferences", "", preferencesValue(c.Preferences)))
	}
	return changes
}
