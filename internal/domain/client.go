package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a buyer tracked by the CRM. Clients are never hard-deleted:
// archiving sets ArchivedAt so the audit trail stays intact.
type Client struct {
	ID          uuid.UUID
	Name        string
	Contacts    []ContactChannel
	BudgetMin   int64
	BudgetMax   int64
	Preferences []string
	Stage       LifecycleStage
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ArchivedAt  *time.Time
}

// ContactChannel is a single way of reaching a client. Rank orders channels
// by preference, 1 being the most preferred.
type ContactChannel struct {
	Kind  ContactKind
	Value string
	Rank  int
}

// IsArchived returns true if the client has been soft-archived.
func (c *Client) IsArchived() bool {
	return c.ArchivedAt != nil
}

// Validate checks the client's field invariants.
func (c *Client) Validate() error {
	var errs []FieldError

	if c.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "must not be empty"})
	}
	if c.BudgetMin < 0 {
		errs = append(errs, FieldError{Field: "budget_min", Message: "must not be negative"})
	}
	if c.BudgetMin > c.BudgetMax {
		errs = append(errs, FieldError{Field: "budget", Message: "min must not exceed max"})
	}
	if !c.Stage.IsValid() {
		errs = append(errs, FieldError{Field: "stage", Message: "unknown lifecycle stage"})
	}
	for _, ch := range c.Contacts {
		if !ch.Kind.IsValid() {
			errs = append(errs, FieldError{Field: "contacts", Message: "unknown contact kind"})
		}
		if ch.Value == "" {
			errs = append(errs, FieldError{Field: "contacts", Message: "value must not be empty"})
		}
		if ch.Rank < 1 {
			errs = append(errs, FieldError{Field: "contacts", Message: "rank must be >= 1"})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ClientUpdateParams holds a partial update. Nil fields are left unchanged.
type ClientUpdateParams struct {
	Name        *string
	Contacts    []ContactChannel
	BudgetMin   *int64
	BudgetMax   *int64
	Preferences []string
}

// IsEmpty returns true when the patch changes nothing.
func (p ClientUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Contacts == nil && p.BudgetMin == nil &&
		p.BudgetMax == nil && p.Preferences == nil
}
