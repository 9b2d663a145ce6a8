// Package notify defines the outbound notification port and the async
// dispatcher that feeds it. The real delivery system (push, SMS, email)
// lives outside this core; implementations of Notifier own at-least-once
// delivery.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

// Event describes a committed state transition.
type Event struct {
	EntityType domain.EntityType
	EntityID   uuid.UUID
	OldState   string
	NewState   string
	ActorID    uuid.UUID
	OccurredAt time.Time
}

// Notifier is the outbound port. Implementations are expected to be
// best-effort; a returned error only causes a DELIVERY_PENDING audit
// marker, never a rollback.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}
