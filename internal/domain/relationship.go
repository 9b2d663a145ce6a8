package domain

import (
	"time"

	"github.com/google/uuid"
)

// Relationship is a typed link between a client and a property. The ledger
// references both sides by id only; records are inserted on link and mutated
// only by relist, which demotes an UNDER_CONTRACT link back to INTERESTED.
type Relationship struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	PropertyID uuid.UUID
	Kind       RelationshipKind
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActiveContract reports whether this link currently claims the property.
func (r *Relationship) IsActiveContract() bool {
	return r.Kind.IsContract()
}

// Validate checks the link's field invariants.
func (r *Relationship) Validate() error {
	var errs []FieldError

	if r.ClientID == uuid.Nil {
		errs = append(errs, FieldError{Field: "client_id", Message: "must not be empty"})
	}
	if r.PropertyID == uuid.Nil {
		errs = append(errs, FieldError{Field: "property_id", Message: "must not be empty"})
	}
	if !r.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "unknown relationship kind"})
	}
	if r.CreatedBy == uuid.Nil {
		errs = append(errs, FieldError{Field: "created_by", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
