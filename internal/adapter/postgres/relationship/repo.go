// Package relationship implements the client-property link ledger using
// PostgreSQL. A partial unique index on (property_id) over contract kinds
// backstops the one-active-contract invariant the service layer enforces
// under a row lock.
package relationship

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/oakline/realty-backend/internal/adapter/postgres"
	"github.com/oakline/realty-backend/internal/domain"
)

// Repo provides relationship persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new relationship repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const relationshipColumns = `id, client_id, property_id, kind, created_by, created_at, updated_at`

const createRelationshipSQL = `
INSERT INTO relationships (id, client_id, property_id, kind, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
RETURNING ` + relationshipColumns

const getRelationshipSQL = `
SELECT ` + relationshipColumns + `
FROM relationships
WHERE id = $1`

const getActiveContractSQL = `
SELECT ` + relationshipColumns + `
FROM relationships
WHERE property_id = $1 AND kind IN ('UNDER_CONTRACT', 'PURCHASED')`

// demoteSQL only fires when the link is still UNDER_CONTRACT; a PURCHASED
// link cannot be relisted.
const demoteSQL = `
UPDATE relationships
SET kind = 'INTERESTED', updated_at = now()
WHERE id = $1 AND kind = 'UNDER_CONTRACT'
RETURNING ` + relationshipColumns

const promoteSQL = `
UPDATE relationships
SET kind = 'PURCHASED', updated_at = now()
WHERE id = $1 AND kind = 'UNDER_CONTRACT'
RETURNING ` + relationshipColumns

const listByClientSQL = `
SELECT ` + relationshipColumns + `
FROM relationships
WHERE client_id = $1
ORDER BY created_at ASC, id ASC`

const listByPropertySQL = `
SELECT ` + relationshipColumns + `
FROM relationships
WHERE property_id = $1
ORDER BY created_at ASC, id ASC`

// Create inserts a new link. A unique-index violation on the active-contract
// index surfaces as domain.ErrActiveContract.
func (r *Repo) Create(ctx context.Context, rel domain.Relationship) (*domain.Relationship, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createRelationshipSQL,
		rel.ID, rel.ClientID, rel.PropertyID, rel.Kind.String(), rel.CreatedBy)

	result, err := scanRelationship(row)
	if err != nil {
		return nil, mapLinkError(err, rel.ID)
	}

	return result, nil
}

// GetByID returns a link by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Relationship, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result, err := scanRelationship(querier.QueryRow(ctx, getRelationshipSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "relationship", id)
	}

	return result, nil
}

// GetActiveContract returns the property's active contract link, or
// domain.ErrNotFound when the property is unclaimed.
func (r *Repo) GetActiveContract(ctx context.Context, propertyID uuid.UUID) (*domain.Relationship, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result, err := scanRelationship(querier.QueryRow(ctx, getActiveContractSQL, propertyID))
	if err != nil {
		return nil, postgres.MapError(err, "relationship", propertyID)
	}

	return result, nil
}

// Demote turns an UNDER_CONTRACT link back into INTERESTED (relist).
// Returns domain.ErrNotFound if the link is absent or not under contract.
func (r *Repo) Demote(ctx context.Context, id uuid.UUID) (*domain.Relationship, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result, err := scanRelationship(querier.QueryRow(ctx, demoteSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "relationship", id)
	}

	return result, nil
}

// Promote turns an UNDER_CONTRACT link into PURCHASED (closing).
// Returns domain.ErrNotFound if the link is absent or not under contract.
func (r *Repo) Promote(ctx context.Context, id uuid.UUID) (*domain.Relationship, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result, err := scanRelationship(querier.QueryRow(ctx, promoteSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "relationship", id)
	}

	return result, nil
}

// ListByClient returns all links for a client ordered by creation.
// Returns an empty slice (not nil) when the client has no links.
func (r *Repo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Relationship, error) {
	return r.list(ctx, listByClientSQL, clientID)
}

// ListByProperty returns all links for a property ordered by creation.
// Returns an empty slice (not nil) when the property has no links.
func (r *Repo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*domain.Relationship, error) {
	return r.list(ctx, listByPropertySQL, propertyID)
}

func (r *Repo) list(ctx context.Context, query string, id uuid.UUID) ([]*domain.Relationship, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list relationships: %w", err)
	}
	defer rows.Close()

	links := []*domain.Relationship{}
	for rows.Next() {
		rel, err := scanRelationship(rows)
		if err != nil {
			return nil, fmt.Errorf("list relationships: %w", err)
		}
		links = append(links, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list relationships: %w", err)
	}

	return links, nil
}

// mapLinkError specializes MapError: a violation of the active-contract
// unique index means a competing claim, not a generic duplicate.
func mapLinkError(err error, id uuid.UUID) error {
	mapped := postgres.MapError(err, "relationship", id)
	if mapped != nil && isActiveContractViolation(err) {
		return fmt.Errorf("relationship %s: %w", id, domain.ErrActiveContract)
	}
	return mapped
}

// isActiveContractViolation matches a unique violation on the partial
// contract index specifically.
func isActiveContractViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" && pgErr.ConstraintName == "relationships_active_contract_idx"
}

func scanRelationship(row pgx.Row) (*domain.Relationship, error) {
	var (
		rel  domain.Relationship
		kind string
	)

	err := row.Scan(&rel.ID, &rel.ClientID, &rel.PropertyID, &kind,
		&rel.CreatedBy, &rel.CreatedAt, &rel.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rel.Kind = domain.RelationshipKind(kind)
	rel.CreatedAt = rel.CreatedAt.UTC()
	rel.UpdatedAt = rel.UpdatedAt.UTC()
	return &rel, nil
}
