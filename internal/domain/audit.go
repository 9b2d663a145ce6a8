package domain

import (
	"time"

	"github.com/google/uuid"
)

// FieldNotification is the synthetic audit field recording a notification
// that could not be handed to the port (DELIVERY_PENDING marker).
const FieldNotification = "notification"

// DeliveryPending is the NewValue written with FieldNotification entries.
const DeliveryPending = "DELIVERY_PENDING"

// AuditEntry is one immutable record of a single field change. Seq is
// assigned by the store and breaks ordering ties between entries sharing
// a timestamp.
type AuditEntry struct {
	ID         uuid.UUID
	Seq        int64
	EntityType EntityType
	EntityID   uuid.UUID
	Field      string
	OldValue   *string
	NewValue   *string
	ActorID    uuid.UUID
	CreatedAt  time.Time
}

// FieldChange is a pending (field, old, new) triple produced by diffing an
// entity before and after a mutation. The store turns each one into an
// AuditEntry at commit time.
type FieldChange struct {
	Field    string
	OldValue *string
	NewValue *string
}

// Change builds a FieldChange from plain string values. Empty old marks
// a creation (no prior value).
func Change(field, oldValue, newValue string) FieldChange {
	fc := FieldChange{Field: field, NewValue: &newValue}
	if oldValue != "" {
		fc.OldValue = &oldValue
	}
	return fc
}
