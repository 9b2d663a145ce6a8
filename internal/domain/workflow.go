package domain

// The two workflow state machines. Both are plain transition tables: an edge
// is legal iff the target appears in the source's entry. Everything else is
// rejected with a TransitionError naming the edge.

// propertyTransitions: AVAILABLE <-> UNDER_CONTRACT (claim / relist),
// UNDER_CONTRACT -> SOLD (closing), AVAILABLE <-> WITHDRAWN (withdraw /
// un-withdraw). SOLD is terminal. Withdrawal is only reachable from
// AVAILABLE: a contract must resolve first.
var propertyTransitions = map[PropertyStatus][]PropertyStatus{
	PropertyStatusAvailable:     {PropertyStatusUnderContract, PropertyStatusWithdrawn},
	PropertyStatusUnderContract: {PropertyStatusSold, PropertyStatusAvailable},
	PropertyStatusSold:          {},
	PropertyStatusWithdrawn:     {PropertyStatusAvailable},
}

// stageTransitions: the qualification funnel is strictly linear. NEW must
// pass through QUALIFIED before ACTIVE; CLOSED and LOST are terminal exits
// from ACTIVE.
var stageTransitions = map[LifecycleStage][]LifecycleStage{
	LifecycleStageNew:       {LifecycleStageQualified},
	LifecycleStageQualified: {LifecycleStageActive},
	LifecycleStageActive:    {LifecycleStageClosed, LifecycleStageLost},
	LifecycleStageClosed:    {},
	LifecycleStageLost:      {},
}

// ValidatePropertyTransition returns nil if the property status edge is
// legal, or a TransitionError naming the rejected edge.
func ValidatePropertyTransition(from, to PropertyStatus) error {
	for _, next := range propertyTransitions[from] {
		if next == to {
			return nil
		}
	}
	return &TransitionError{EntityType: EntityTypeProperty, From: from.String(), To: to.String()}
}

// ValidateStageTransition returns nil if the lifecycle stage edge is legal,
// or a TransitionError naming the rejected edge.
func ValidateStageTransition(from, to LifecycleStage) error {
	for _, next := range stageTransitions[from] {
		if next == to {
			return nil
		}
	}
	return &TransitionError{EntityType: EntityTypeClient, From: from.String(), To: to.String()}
}

// StatusForContractKind maps a contract-kind link event to the property
// status it implies. Non-contract kinds imply no status change.
func StatusForContractKind(kind RelationshipKind) (PropertyStatus, bool) {
	switch kind {
	case RelationshipKindUnderContract:
		return PropertyStatusUnderContract, true
	case RelationshipKindPurchased:
		return PropertyStatusSold, true
	}
	return "", false
}
