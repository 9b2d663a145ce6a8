// Package client implements the Client repository using PostgreSQL.
// It provides CRUD with optimistic concurrency: every update carries the
// caller's expected version and fails with domain.ErrVersionConflict when
// the stored row has moved on.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/oakline/realty-backend/internal/adapter/postgres"
	"github.com/oakline/realty-backend/internal/domain"
)

// Repo provides client persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new client repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const clientColumns = `id, name, contacts, budget_min, budget_max, preferences, stage, version, created_at, updated_at, archived_at`

const createClientSQL = `
INSERT INTO clients (id, name, contacts, budget_min, budget_max, preferences, stage, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING ` + clientColumns

const getClientSQL = `
SELECT ` + clientColumns + `
FROM clients
WHERE id = $1`

const getClientVersionSQL = `
SELECT version FROM clients WHERE id = $1`

const updateStageSQL = `
UPDATE clients
SET stage = $3, version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + clientColumns

const archiveClientSQL = `
UPDATE clients
SET archived_at = now(), version = version + 1, updated_at = now()
WHERE id = $1 AND archived_at IS NULL
RETURNING ` + clientColumns

// Create inserts a new client and returns the persisted domain.Client
// with version = 1.
func (r *Repo) Create(ctx context.Context, c domain.Client) (*domain.Client, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	contacts, err := json.Marshal(contactsToJSON(c.Contacts))
	if err != nil {
		return nil, fmt.Errorf("client marshal contacts: %w", err)
	}

	row := querier.QueryRow(ctx, createClientSQL,
		c.ID, c.Name, contacts, c.BudgetMin, c.BudgetMax, c.Preferences, c.Stage.String())

	result, err := scanClient(row)
	if err != nil {
		return nil, postgres.MapError(err, "client", c.ID)
	}

	return result, nil
}

// GetByID returns a client by primary key, archived or not.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result, err := scanClient(querier.QueryRow(ctx, getClientSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "client", id)
	}

	return result, nil
}

// Update applies a partial patch guarded by expectedVersion. On a version
// mismatch it distinguishes domain.ErrVersionConflict (row exists at another
// version) from domain.ErrNotFound (row absent).
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ClientUpdateParams, expectedVersion int64) (*domain.Client, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Update("clients").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "version": expectedVersion}).
		Suffix("RETURNING " + clientColumns)

	if params.Name != nil {
		builder = builder.Set("name", *params.Name)
	}
	if params.Contacts != nil {
		contacts, err := json.Marshal(contactsToJSON(params.Contacts))
		if err != nil {
			return nil, fmt.Errorf("client marshal contacts: %w", err)
		}
		builder = builder.Set("contacts", contacts)
	}
	if params.BudgetMin != nil {
		builder = builder.Set("budget_min", *params.BudgetMin)
	}
	if params.BudgetMax != nil {
		builder = builder.Set("budget_max", *params.BudgetMax)
	}
	if params.Preferences != nil {
		builder = builder.Set("preferences", params.Preferences)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("client build update: %w", err)
	}

	result, err := scanClient(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, r.disambiguateMiss(ctx, id, expectedVersion, err)
	}

	return result, nil
}

// UpdateStage moves the client's lifecycle stage under the same version guard
// as Update. Transition legality is the service layer's concern.
func (r *Repo) UpdateStage(ctx context.Context, id uuid.UUID, stage domain.LifecycleStage, expectedVersion int64) (*domain.Client, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result, err := scanClient(querier.QueryRow(ctx, updateStageSQL, id, expectedVersion, stage.String()))
	if err != nil {
		return nil, r.disambiguateMiss(ctx, id, expectedVersion, err)
	}

	return result, nil
}

// Archive soft-archives the client. Archiving an already-archived client
// returns domain.ErrNotFound via the archived_at IS NULL guard.
func (r *Repo) Archive(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	result, err := scanClient(querier.QueryRow(ctx, archiveClientSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "client", id)
	}

	return result, nil
}

// List returns clients matching the filter, ordered by creation time.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error) {
	filter.Normalize()
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Select(clientColumns).
		From("clients").
		OrderBy("created_at ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Stage != nil {
		builder = builder.Where(sq.Eq{"stage": filter.Stage.String()})
	}
	if !filter.IncludeArchived {
		builder = builder.Where(sq.Eq{"archived_at": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("client build list: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := []*domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("list clients: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return clients, nil
}

// disambiguateMiss resolves a zero-row UPDATE into ErrVersionConflict or
// ErrNotFound by re-reading the stored version.
func (r *Repo) disambiguateMiss(ctx context.Context, id uuid.UUID, expectedVersion int64, cause error) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var stored int64
	if verErr := querier.QueryRow(ctx, getClientVersionSQL, id).Scan(&stored); verErr != nil {
		return postgres.MapError(verErr, "client", id)
	}
	if stored != expectedVersion {
		return fmt.Errorf("client %s: expected version %d, stored %d: %w",
			id, expectedVersion, stored, domain.ErrVersionConflict)
	}
	return postgres.MapError(cause, "client", id)
}

// ---------------------------------------------------------------------------
// Row scanning and JSONB mapping
// ---------------------------------------------------------------------------

// contactJSON is the JSONB wire shape for a contact channel.
type contactJSON struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Rank  int    `json:"rank"`
}

func contactsToJSON(contacts []domain.ContactChannel) []contactJSON {
	out := make([]contactJSON, len(contacts))
	for i, c := range contacts {
		out[i] = contactJSON{Kind: c.Kind.String(), Value: c.Value, Rank: c.Rank}
	}
	return out
}

func contactsFromJSON(raw []byte) ([]domain.ContactChannel, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var decoded []contactJSON
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal contacts: %w", err)
	}
	contacts := make([]domain.ContactChannel, len(decoded))
	for i, c := range decoded {
		contacts[i] = domain.ContactChannel{Kind: domain.ContactKind(c.Kind), Value: c.Value, Rank: c.Rank}
	}
	return contacts, nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var (
		c        domain.Client
		contacts []byte
		stage    string
	)

	err := row.Scan(&c.ID, &c.Name, &contacts, &c.BudgetMin, &c.BudgetMax,
		&c.Preferences, &stage, &c.Version, &c.CreatedAt, &c.UpdatedAt, &c.ArchivedAt)
	if err != nil {
		return nil, err
	}

	c.Stage = domain.LifecycleStage(stage)
	c.Contacts, err = contactsFromJSON(contacts)
	if err != nil {
		return nil, err
	}

	normalizeTimes(&c.CreatedAt, &c.UpdatedAt)
	return &c, nil
}

func normalizeTimes(ts ...*time.Time) {
	for _, t := range ts {
		*t = t.UTC()
	}
}
