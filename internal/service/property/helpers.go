package property

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

func entryFor(entityID, actorID uuid.UUID, change domain.FieldChange) domain.AuditEntry {
	return domain.AuditEntry{
		ID:         uuid.New(),
		EntityType: domain.EntityTypeProperty,
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

// addressValue renders an address for the audit trail.
func addressValue(a domain.Address) string {
	parts := []string{a.Line1}
	if a.Line2 != nil && *a.Line2 != "" {
		parts = append(parts, *a.Line2)
	}
	parts = append(parts, a.City, a.Region, a.PostalCode)
	return strings.Join(parts, ", ")
}

func priceValue(v int64) string {
	return strconv.FormatInt(v, 10)
}

func descriptionValue(d *string) string {
	if d == nil {
		return ""
	}
	return *d
}
