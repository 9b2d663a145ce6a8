package property

import (
	"context"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

// Get returns a single property. Archived properties stay readable.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("property_id", "must not be empty")
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	return s.properties.GetByID(ctx, id)
}

// List returns properties matching the filter.
func (s *Service) List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	return s.properties.List(ctx, filter)
}
