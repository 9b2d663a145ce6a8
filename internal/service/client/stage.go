package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/internal/notify"
	"github.com/oakline/realty-backend/pkg/ctxutil"
)

// AdvanceStage moves a client to the next lifecycle stage. The funnel is
// strictly forward; a rejected edge fails with domain.ErrInvalidTransition
// naming both endpoints. Subscribers are notified after the commit.
func (s *Service) AdvanceStage(ctx context.Context, input AdvanceStageInput) (*domain.Client, error) {
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
		updated  *domain.Client
		oldStage domain.LifecycleStage
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.clients.GetByID(txCtx, input.ClientID)
		if err != nil {
			return fmt.Errorf("get client: %w", err)
		}
		if current.IsArchived() {
			return fmt.Errorf("client %s: %w", current.ID, domain.ErrArchived)
		}

		if err := domain.ValidateStageTransition(current.Stage, input.Stage); err != nil {
			return err
		}

		updated, err = s.clients.UpdateStage(txCtx, input.ClientID, input.Stage, current.Version)
		if err != nil {
			return fmt.Errorf("update stage: %w", err)
		}

		oldStage = current.Stage

		change := domain.Change("stage", current.Stage.String(), input.Stage.String())
		return s.audit.Append(txCtx, []domain.AuditEntry{entryFor(updated.ID, actorID, change)})
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(notify.Event{
		EntityType: domain.EntityTypeClient,
		EntityID:   input.ClientID,
		OldState:   oldStage.String(),
		NewState:   input.Stage.String(),
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})

	s.log.InfoContext(ctx, "client stage advanced",
		slog.String("client_id", input.ClientID.String()),
		slog.String("from", oldStage.String()),
		slog.String("to", input.Stage.String()),
	)

	return updated, nil
}
