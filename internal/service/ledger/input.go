package ledger

import (
	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

// LinkInput creates a new client-property link.
type LinkInput struct {
	ClientID   uuid.UUID
	PropertyID uuid.UUID
	Kind       domain.RelationshipKind
}

// Validate checks the input fields.
func (i LinkInput) Validate() error {
	var errs []domain.FieldError

	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "must not be empty"})
	}
	if i.PropertyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "property_id", Message: "must not be empty"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown relationship kind"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RelistInput returns an under-contract property to the market.
type RelistInput struct {
	PropertyID uuid.UUID
}

// Validate checks the input fields.
func (i RelistInput) Validate() error {
	if i.PropertyID == uuid.Nil {
		return domain.NewValidationError("property_id", "must not be empty")
	}
	return nil
}

// CloseInput completes the sale of an under-contract property.
type CloseInput struct {
	PropertyID uuid.UUID
}

// Validate checks the input fields.
func (i CloseInput) Validate() error {
	if i.PropertyID == uuid.Nil {
		return domain.NewValidationError("property_id", "must not be empty")
	}
	return nil
}
