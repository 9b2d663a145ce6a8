package domain

// PropertyStatus represents a property's position in the sales workflow.
type PropertyStatus string

const (
	PropertyStatusAvailable     PropertyStatus = "AVAILABLE"
	PropertyStatusUnderContract PropertyStatus = "UNDER_CONTRACT"
	PropertyStatusSold          PropertyStatus = "SOLD"
	PropertyStatusWithdrawn     PropertyStatus = "WITHDRAWN"
)

func (s PropertyStatus) String() string { return string(s) }

func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusUnderContract, PropertyStatusSold, PropertyStatusWithdrawn:
		return true
	}
	return false
}

// LifecycleStage represents a client's position in the qualification funnel.
type LifecycleStage string

const (
	LifecycleStageNew       LifecycleStage = "NEW"
	LifecycleStageQualified LifecycleStage = "QUALIFIED"
	LifecycleStageActive    LifecycleStage = "ACTIVE"
	LifecycleStageClosed    LifecycleStage = "CLOSED"
	LifecycleStageLost      LifecycleStage = "LOST"
)

func (s LifecycleStage) String() string { return string(s) }

func (s LifecycleStage) IsValid() bool {
	switch s {
	case LifecycleStageNew, LifecycleStageQualified, LifecycleStageActive,
		LifecycleStageClosed, LifecycleStageLost:
		return true
	}
	return false
}

// RelationshipKind classifies a client-property link.
type RelationshipKind string

const (
	RelationshipKindInterested    RelationshipKind = "INTERESTED"
	RelationshipKindViewing       RelationshipKind = "VIEWING"
	RelationshipKindOffer         RelationshipKind = "OFFER"
	RelationshipKindUnderContract RelationshipKind = "UNDER_CONTRACT"
	RelationshipKindPurchased     RelationshipKind = "PURCHASED"
)

func (k RelationshipKind) String() string { return string(k) }

func (k RelationshipKind) IsValid() bool {
	switch k {
	case RelationshipKindInterested, RelationshipKindViewing, RelationshipKindOffer,
		RelationshipKindUnderContract, RelationshipKindPurchased:
		return true
	}
	return false
}

// IsContract reports whether the kind claims the property exclusively.
// At most one non-reversed link of a contract kind may exist per property.
func (k RelationshipKind) IsContract() bool {
	return k == RelationshipKindUnderContract || k == RelationshipKindPurchased
}

// ContactKind identifies a client contact channel.
type ContactKind string

const (
	ContactKindPhone ContactKind = "PHONE"
	ContactKindEmail ContactKind = "EMAIL"
)

func (c ContactKind) String() string { return string(c) }

func (c ContactKind) IsValid() bool {
	switch c {
	case ContactKindPhone, ContactKindEmail:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit entries
// and notification events).
type EntityType string

const (
	EntityTypeClient       EntityType = "CLIENT"
	EntityTypeProperty     EntityType = "PROPERTY"
	EntityTypeRelationship EntityType = "RELATIONSHIP"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeClient, EntityTypeProperty, EntityTypeRelationship:
		return true
	}
	return false
}
