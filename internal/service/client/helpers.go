package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

func entryFor(entityID, actorID uuid.UUID, change domain.FieldChange) domain.AuditEntry {
	return domain.AuditEntry{
		ID:         uuid.New(),
		EntityType: domain.EntityTypeClient,
		EntityID:   entityID,
		Field:      change.Field,
		OldValue:   change.OldValue,
		NewValue:   change.NewValue,
		ActorID:    actorID,
	}
}

func entriesFor(entityID, actorID uuid.UUID, changes []domain.FieldChange) []domain.AuditEntry {
	entries := make([]domain.AuditEntry, len(changes))
	for i, change := range changes {
		entries[i] = entryFor(entityID, actorID, change)
	}
	return entries
}

// contactsValue renders contact channels for the audit trail.
func contactsValue(contacts []domain.ContactChannel) string {
	parts := make([]string, len(contacts))
	for i, ch := range contacts {
		parts[i] = fmt.Sprintf("%s:%s", ch.Kind, ch.Value)
	}
	return strings.Join(parts, ";")
}

func preferencesValue(prefs []string) string {
	return strings.Join(prefs, ",")
}

func budgetValue(v int64) string {
	return strconv.FormatInt(v, 10)
}
