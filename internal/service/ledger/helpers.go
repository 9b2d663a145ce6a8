package ledger

import (
	"errors"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func entryFor(entityType domain.EntityType, entityID, actorID uuid.UUID, change domain.FieldChange) domain.AuditEntry {
	return domain.AuditEntry{
		ID:         uuid.New(),
		EntityType: entityType,
		EntityID:   entityID,
		Field:      change.Field,
		OldValue:   change.OldValue,
		NewValue:   change.NewValue,
		ActorID:    actorID,
	}
}

func entriesFor(entityType domain.EntityType, entityID, actorID uuid.UUID, changes []domain.FieldChange) []domain.AuditEntry {
	entries := make([]domain.AuditEntry, len(changes))
	for i, change := range changes {
		entries[i] = entryFor(entityType, entityID, actorID, change)
	}
	return entries
}
