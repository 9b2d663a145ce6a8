// Package property implements the Property repository using PostgreSQL.
// Besides versioned CRUD it exposes GetForUpdate, the per-property exclusive
// row lock the ledger takes before a contract claim.
package property

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/oakline/realty-backend/internal/adapter/postgres"
	"github.com/oakline/realty-backend/internal/domain"
)

// Repo provides property persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new property repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const propertyColumns = `id, line1, line2, city, region, postal_code, price, description, status, version, created_at, updated_at, archived_at`

const createPropertySQL = `
INSERT INTO properties (id, line1, line2, city, region, postal_code, price, description, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
RETURNING ` + propertyColumns

const getPropertySQL = `
SELECT ` + propertyColumns + `
FROM properties
WHERE id = $1`

// getForUpdateSQL blocks concurrent claimants on the same property row
// until the surrounding transaction resolves. Different properties never
// contend.
const getForUpdateSQL = `
SELECT ` + propertyColumns + `
FROM properties
WHERE id = $1
FOR UPDATE`

const getPropertyVersionSQL = `
SELECT version FROM properties WHERE id = $1`

const updateStatusSQL = `
UPDATE properties
SET status = $3, version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + propertyColumns

const archivePropertySQL = `
UPDATE properties
SET archived_at = now(), version = version + 1, updated_at = now()
WHERE id = $1 AND archived_at IS NULL
RETURNING ` + propertyColumns

// Create inserts a new property and returns the persisted domain.Property
// with version = 1.
func (r *Repo) Create(ctx context.Context, p domain.Property) (*domain.Property, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createPropertySQL,
		p.ID, p.Address.Line1, p.Address.Line2, p.Address.City, p.Address.Region,
		p.Address.PostalCode, p.Price, p.Description, p.Status.String())

	result, err := scanProperty(row)
	if err != nil {
		return nil, postgres.MapError(err, "property", p.ID)
	}

	return result, nil
}

// GetByID returns a property by primary key, archived or not.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result, err := scanProperty(querier.QueryRow(ctx, getPropertySQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "property", id)
	}

	return result, nil
}

// GetForUpdate reads the property under an exclusive row lock. Must be
// called inside a transaction; outside one the lock releases immediately.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result, err := scanProperty(querier.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "property", id)
	}

	return result, nil
}

// Update applies a partial patch guarded by expectedVersion. Status is not
// part of the patch; it moves only through UpdateStatus.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.PropertyUpdateParams, expectedVersion int64) (*domain.Property, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Update("properties").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "version": expectedVersion}).
		Suffix("RETURNING " + propertyColumns)

	if params.Address != nil {
		builder = builder.
			Set("line1", params.Address.Line1).
			Set("line2", params.Address.Line2).
			Set("city", params.Address.City).
			Set("region", params.Address.Region).
			Set("postal_code", params.Address.PostalCode)
	}
	if params.Price != nil {
		builder = builder.Set("price", *params.Price)
	}
	if params.Description != nil {
		builder = builder.Set("description", *params.Description)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("property build update: %w", err)
	}

	result, err := scanProperty(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, r.disambiguateMiss(ctx, id, expectedVersion, err)
	}

	return result, nil
}

// UpdateStatus moves the property's workflow status under the version guard.
// Transition legality is validated by the caller before this is reached.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PropertyStatus, expectedVersion int64) (*domain.Property, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result, err := scanProperty(querier.QueryRow(ctx, updateStatusSQL, id, expectedVersion, status.String()))
	if err != nil {
		return nil, r.disambiguateMiss(ctx, id, expectedVersion, err)
	}

	return result, nil
}

// Archive soft-archives the property.
func (r *Repo) Archive(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result, err := scanProperty(querier.QueryRow(ctx, archivePropertySQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "property", id)
	}

	return result, nil
}

// List returns properties matching the filter, ordered by creation time.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	filter.Normalize()
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Select(propertyColumns).
		From("properties").
		OrderBy("created_at ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.PriceMin != nil {
		builder = builder.Where(sq.GtOrEq{"price": *filter.PriceMin})
	}
	if filter.PriceMax != nil {
		builder = builder.Where(sq.LtOrEq{"price": *filter.PriceMax})
	}
	if !filter.IncludeArchived {
		builder = builder.Where(sq.Eq{"archived_at": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("property build list: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	properties := []*domain.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("list properties: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	return properties, nil
}

// disambiguateMiss resolves a zero-row UPDATE into ErrVersionConflict or
// ErrNotFound by re-reading the stored version.
func (r *Repo) disambiguateMiss(ctx context.Context, id uuid.UUID, expectedVersion int64, cause error) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var stored int64
	if verErr := querier.QueryRow(ctx, getPropertyVersionSQL, id).Scan(&stored); verErr != nil {
		return postgres.MapError(verErr, "property", id)
	}
	if stored != expectedVersion {
		return fmt.Errorf("property %s: expected version %d, stored %d: %w",
			id, expectedVersion, stored, domain.ErrVersionConflict)
	}
	return postgres.MapError(cause, "property", id)
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var (
		p      domain.Property
		status string
	)

	err := row.Scan(&p.ID, &p.Address.Line1, &p.Address.Line2, &p.Address.City,
		&p.Address.Region, &p.Address.PostalCode, &p.Price, &p.Description,
		&status, &p.Version, &p.CreatedAt, &p.UpdatedAt, &p.ArchivedAt)
	if err != nil {
		return nil, err
	}

	p.Status = domain.PropertyStatus(status)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}
