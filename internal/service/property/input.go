package property

import (
	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

// AddInput lists a new property. Every listing starts AVAILABLE.
type AddInput struct {
	Address     domain.Address
	Price       int64
	Description *string
}

// Validate checks the input fields.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	if i.Address.Line1 == "" {
		errs = append(errs, domain.FieldError{Field: "address.line1", Message: "must not be empty"})
	}
	if i.Address.City == "" {
		errs = append(errs, domain.FieldError{Field: "address.city", Message: "must not be empty"})
	}
	if i.Price < 0 {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput applies a partial update to a property's descriptive fields.
// Status is not updatable here; it only moves through workflow transitions.
type UpdateInput struct {
	PropertyID      uuid.UUID
	ExpectedVersion int64
	Params          domain.PropertyUpdateParams
}

// Validate checks the input fields.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.PropertyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "property_id", Message: "must not be empty"})
	}
	if i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "expected_version", Message: "must be >= 1"})
	}
	if i.Params.Price != nil && *i.Params.Price < 0 {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	if i.Params.Address != nil {
		if i.Params.Address.Line1 == "" {
			errs = append(errs, domain.FieldError{Field: "address.line1", Message: "must not be empty"})
		}
		if i.Params.Address.City == "" {
			errs = append(errs, domain.FieldError{Field: "address.city", Message: "must not be empty"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// WithdrawInput takes an available property off the market.
type WithdrawInput struct {
	PropertyID uuid.UUID
}

// Validate checks the input fields.
func (i WithdrawInput) Validate() error {
	if i.PropertyID == uuid.Nil {
		return domain.NewValidationError("property_id", "must not be empty")
	}
	return nil
}

// UnwithdrawInput returns a withdrawn property to the market.
type UnwithdrawInput struct {
	PropertyID uuid.UUID
}

// Validate checks the input fields.
func (i UnwithdrawInput) Validate() error {
	if i.PropertyID == uuid.Nil {
		return domain.NewValidationError("property_id", "must not be empty")
	}
	return nil
}

// ArchiveInput soft-archives a withdrawn property.
type ArchiveInput struct {
	PropertyID uuid.UUID
}

// Validate checks the input fields.
func (i ArchiveInput) Validate() error {
	if i.PropertyID == uuid.Nil {
		return domain.NewValidationError("property_id", "must not be empty")
	}
	return nil
}
