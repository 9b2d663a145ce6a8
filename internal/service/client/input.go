package client

import (
	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

// IntakeInput registers a new client. The lifecycle stage always starts at
// NEW; callers cannot pick a stage.
type IntakeInput struct {
	Name        string
	Contacts    []domain.ContactChannel
	BudgetMin   int64
	BudgetMax   int64
	Preferences []string
}

// Validate checks the input fields.
func (i IntakeInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.BudgetMin < 0 {
		errs = append(errs, domain.FieldError{Field: "budget_min", Message: "must not be negative"})
	}
	if i.BudgetMin > i.BudgetMax {
		errs = append(errs, domain.FieldError{Field: "budget", Message: "min must not exceed max"})
	}
	for _, ch := range i.Contacts {
		if !ch.Kind.IsValid() {
			errs = append(errs, domain.FieldError{Field: "contacts", Message: "unknown contact kind"})
		}
		if ch.Value == "" {
			errs = append(errs, domain.FieldError{Field: "contacts", Message: "value must not be empty"})
		}
		if ch.Rank < 1 {
			errs = append(errs, domain.FieldError{Field: "contacts", Message: "rank must be >= 1"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput applies a partial update to a client's descriptive fields.
// Stage and archival are separate operations.
type UpdateInput struct {
	ClientID        uuid.UUID
	ExpectedVersion int64
	Params          domain.ClientUpdateParams
}

// Validate checks the input fields.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "must not be empty"})
	}
	if i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "expected_version", Message: "must be >= 1"})
	}
	if i.Params.Name != nil && *i.Params.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Params.BudgetMin != nil && *i.Params.BudgetMin < 0 {
		errs = append(errs, domain.FieldError{Field: "budget_min", Message: "must not be negative"})
	}
	for _, ch := range i.Params.Contacts {
		if !ch.Kind.IsValid() {
			errs = append(errs, domain.FieldError{Field: "contacts", Message: "unknown contact kind"})
		}
		if ch.Value == "" {
			errs = append(errs, domain.FieldError{Field: "contacts", Message: "value must not be empty"})
		}
		if ch.Rank < 1 {
			errs = append(errs, domain.FieldError{Field: "contacts", Message: "rank must be >= 1"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AdvanceStageInput moves a client along the lifecycle funnel.
type AdvanceStageInput struct {
	ClientID uuid.UUID
	Stage    domain.LifecycleStage
}

// Validate checks the input fields.
func (i AdvanceStageInput) Validate() error {
	var errs []domain.FieldError

	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "must not be empty"})
	}
	if !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "unknown lifecycle stage"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ArchiveInput soft-archives a client.
type ArchiveInput struct {
	ClientID uuid.UUID
}

// Validate checks the input fields.
func (i ArchiveInput) Validate() error {
	if i.ClientID == uuid.Nil {
		return domain.NewValidationError("client_id", "must not be empty")
	}
	return nil
}
