package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

// Get returns a single client. Archived clients stay readable.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("client_id", "must not be empty")
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	return s.clients.GetByID(ctx, id)
}

// List returns clients matching the filter.
func (s *Service) List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	return s.clients.List(ctx, filter)
}
