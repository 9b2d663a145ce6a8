package domain

import "time"

const (
	defaultListLimit = 50
	maxListLimit     = 200

	defaultAuditLimit = 100
	maxAuditLimit     = 1000
)

// ClientFilter contains filtering/pagination parameters for client listings.
type ClientFilter struct {
	// Stage filters clients at the given lifecycle stage. nil means all stages.
	Stage *LifecycleStage

	// IncludeArchived includes soft-archived clients. Default: false.
	IncludeArchived bool

	// Limit is the maximum number of clients to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of clients to skip.
	Offset int
}

// Normalize applies defaults and clamps values.
func (f *ClientFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// PropertyFilter contains filtering/pagination parameters for property listings.
type PropertyFilter struct {
	// Status filters properties at the given workflow status. nil means all.
	Status *PropertyStatus

	// PriceMin / PriceMax bound the listing price (inclusive).
	PriceMin *int64
	PriceMax *int64

	// IncludeArchived includes soft-archived properties. Default: false.
	IncludeArchived bool

	// Limit is the maximum number of properties to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of properties to skip.
	Offset int
}

// Normalize applies defaults and clamps values.
func (f *PropertyFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// AuditQuery defines cursor parameters for reading an entity's history.
type AuditQuery struct {
	// Since resumes after the (Since, AfterSeq) position. nil reads from
	// the beginning.
	Since *time.Time

	// AfterSeq disambiguates entries sharing the Since timestamp.
	AfterSeq int64

	// Limit is the maximum number of entries per page. Default: 100, max: 1000.
	Limit int
}

// Normalize applies defaults and clamps values.
func (q *AuditQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = defaultAuditLimit
	}
	if q.Limit > maxAuditLimit {
		q.Limit = maxAuditLimit
	}
}
