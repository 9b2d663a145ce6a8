package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/internal/notify"
	"github.com/oakline/realty-backend/pkg/ctxutil"
)

// Link creates a client-property relationship. Contract kinds
// (UNDER_CONTRACT, PURCHASED) additionally claim the property: the check for
// a competing active contract, the insert, and the property status
// transition commit atomically under the property's row lock. Archived
// clients and properties reject new links; existing links are untouched.
func (s *Service) Link(ctx context.Context, input LinkInput) (*domain.Relationship, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor_id", "missing from context")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	var (
		created  *domain.Relationship
		oldState domain.PropertyStatus
		newState domain.PropertyStatus
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Contract claims take the row lock; plain links only need a read.
		var (
			prop *domain.Property
			err  error
		)
		if input.Kind.IsContract() {
			prop, err = s.properties.GetForUpdate(txCtx, input.PropertyID)
		} else {
			prop, err = s.properties.GetByID(txCtx, input.PropertyID)
		}
		if err != nil {
			return fmt.Errorf("get property: %w", err)
		}
		if prop.IsArchived() {
			return fmt.Errorf("property %s: %w", prop.ID, domain.ErrArchived)
		}

		client, err := s.clients.GetByID(txCtx, input.ClientID)
		if err != nil {
			return fmt.Errorf("get client: %w", err)
		}
		if client.IsArchived() {
			return fmt.Errorf("client %s: %w", client.ID, domain.ErrArchived)
		}

		rel := domain.Relationship{
			ID:         uuid.New(),
			ClientID:   input.ClientID,
			PropertyID: input.PropertyID,
			Kind:       input.Kind,
			CreatedBy:  actorID,
		}
		if err := rel.Validate(); err != nil {
			return err
		}

		if input.Kind.IsContract() {
			if err := s.checkNoActiveContract(txCtx, prop.ID); err != nil {
				return err
			}

			target, _ := domain.StatusForContractKind(input.Kind)
			if err := domain.ValidatePropertyTransition(prop.Status, target); err != nil {
				return err
			}

			created, err = s.links.Create(txCtx, rel)
			if err != nil {
				return fmt.Errorf("create link: %w", err)
			}

			if _, err := s.properties.UpdateStatus(txCtx, prop.ID, target, prop.Version); err != nil {
				return fmt.Errorf("update property status: %w", err)
			}

			oldState, newState = prop.Status, target

			return s.audit.Append(txCtx, append(
				linkCreatedEntries(created, actorID),
				statusEntry(prop.ID, prop.Status, target, actorID),
			))
		}

		created, err = s.links.Create(txCtx, rel)
		if err != nil {
			return fmt.Errorf("create link: %w", err)
		}

		return s.audit.Append(txCtx, linkCreatedEntries(created, actorID))
	})
	if err != nil {
		return nil, err
	}

	if newState != "" {
		s.dispatcher.Dispatch(notify.Event{
			EntityType: domain.EntityTypeProperty,
			EntityID:   input.PropertyID,
			OldState:   oldState.String(),
			NewState:   newState.String(),
			ActorID:    actorID,
			OccurredAt: time.Now().UTC(),
		})
	}

	s.log.InfoContext(ctx, "relationship created",
		slog.String("client_id", input.ClientID.String()),
		slog.String("property_id", input.PropertyID.String()),
		slog.String("kind", input.Kind.String()),
	)

	return created, nil
}

// checkNoActiveContract fails with domain.ErrActiveContract when another
// client already holds the property.
func (s *Service) checkNoActiveContract(ctx context.Context, propertyID uuid.UUID) error {
	existing, err := s.links.GetActiveContract(ctx, propertyID)
	switch {
	case err == nil:
		return fmt.Errorf("property %s held by client %s: %w",
			propertyID, existing.ClientID, domain.ErrActiveContract)
	case isNotFound(err):
		return nil
	default:
		return fmt.Errorf("check active contract: %w", err)
	}
}

func linkCreatedEntries(rel *domain.Relationship, actorID uuid.UUID) []domain.AuditEntry {
	changes := []domain.FieldChange{
		domain.Change("client_id", "", rel.ClientID.String()),
		domain.Change("property_id", "", rel.PropertyID.String()),
		domain.Change("kind", "", rel.Kind.String()),
	}
	return entriesFor(domain.EntityTypeRelationship, rel.ID, actorID, changes)
}

func statusEntry(propertyID uuid.UUID, from, to domain.PropertyStatus, actorID uuid.UUID) domain.AuditEntry {
	change := domain.Change("status", from.String(), to.String())
	return entryFor(domain.EntityTypeProperty, propertyID, actorID, change)
}
