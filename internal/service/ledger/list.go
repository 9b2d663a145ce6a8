package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

// ListByClient returns the client's links ordered by creation time.
func (s *Service) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Relationship, error) {
	if clientID == uuid.Nil {
		return nil, domain.NewValidationError("client_id", "must not be empty")
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	// Surface NotFound for a dangling id rather than an empty list.
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	return s.links.ListByClient(ctx, clientID)
}

// ListByProperty returns the property's links ordered by creation time.
func (s *Service) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*domain.Relationship, error) {
	if propertyID == uuid.Nil {
		return nil, domain.NewValidationError("property_id", "must not be empty")
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	if _, err := s.properties.GetByID(ctx, propertyID); err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}

	return s.links.ListByProperty(ctx, propertyID)
}
