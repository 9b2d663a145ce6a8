package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/pkg/ctxutil"
)

// Add lists a new property and records the initial field values in the
// audit trail.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Property, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor_id", "missing from context")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	p := domain.Property{
		ID:          uuid.New(),
		Address:     input.Address,
		Price:       input.Price,
		Description: input.Description,
		Status:      domain.PropertyStatusAvailable,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Property
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.properties.Create(txCtx, p)
		if err != nil {
			return fmt.Errorf("create property: %w", err)
		}

		changes := []domain.FieldChange{
			domain.Change("address", "", addressValue(created.Address)),
			domain.Change("price", "", priceValue(created.Price)),
			domain.Change("status", "", created.Status.String()),
		}
		if created.Description != nil {
			changes = append(changes, domain.Change("description", "", *created.Description))
		}
		return s.audit.Append(txCtx, entriesFor(created.ID, actorID, changes))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "property listed",
		slog.String("property_id", created.ID.String()),
		slog.Int64("price", created.Price),
	)

	return created, nil
}
