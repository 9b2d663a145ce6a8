package domain

import (
	"time"

	"github.com/google/uuid"
)

// Property is a listed property in the agency's inventory. Sold properties
// are archived, never deleted.
type Property struct {
	ID          uuid.UUID
	Address     Address
	Price       int64
	Description *string
	Status      PropertyStatus
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ArchivedAt  *time.Time
}

// Address is a structured postal address.
type Address struct {
	Line1      string
	Line2      *string
	City       string
	Region     string
	PostalCode string
}

// IsArchived returns true if the property has been soft-archived.
func (p *Property) IsArchived() bool {
	return p.ArchivedAt != nil
}

// Validate checks the property's field invariants.
func (p *Property) Validate() error {
	var errs []FieldError

	if p.Address.Line1 == "" {
		errs = append(errs, FieldError{Field: "address.line1", Message: "must not be empty"})
	}
	if p.Address.City == "" {
		errs = append(errs, FieldError{Field: "address.city", Message: "must not be empty"})
	}
	if p.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "must not be negative"})
	}
	if !p.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "unknown property status"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// PropertyUpdateParams holds a partial update. Nil fields are left unchanged.
// Status is deliberately absent: status only moves through workflow transitions.
type PropertyUpdateParams struct {
	Address     *Address
	Price       *int64
	Description *string
}

// IsEmpty returns true when the patch changes nothing.
func (p PropertyUpdateParams) IsEmpty() bool {
	return p.Address == nil && p.Price == nil && p.Description == nil
}
