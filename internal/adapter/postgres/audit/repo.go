// Package audit implements the append-only audit log using PostgreSQL.
// Entries are never updated or deleted here; retention is a deployment
// concern resolved through configuration.
package audit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/oakline/realty-backend/internal/adapter/postgres"
	"github.com/oakline/realty-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const auditColumns = `id, seq, entity_type, entity_id, field, old_value, new_value, actor_id, created_at`

const appendEntrySQL = `
INSERT INTO audit_log (id, entity_type, entity_id, field, old_value, new_value, actor_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())`

// Append inserts one entry per field change as a single batch. Seq and
// created_at are assigned by the database so insertion order survives
// same-timestamp ties.
func (r *Repo) Append(ctx context.Context, entries []domain.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, e := range entries {
		id := e.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		batch.Queue(appendEntrySQL,
			id, e.EntityType.String(), e.EntityID, e.Field, e.OldValue, e.NewValue, e.ActorID)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range entries {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "audit_entry", uuid.Nil)
		}
	}

	return nil
}

// Query returns the entity's history ordered by created_at ascending, seq
// breaking ties. The (SinceTime, AfterSeq) cursor makes the read lazy and
// restartable: pass the last entry's values to resume.
func (r *Repo) Query(ctx context.Context, entityID uuid.UUID, q domain.AuditQuery) ([]domain.AuditEntry, error) {
	q.Normalize()
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Select(auditColumns).
		From("audit_log").
		Where(sq.Eq{"entity_id": entityID}).
		OrderBy("created_at ASC", "seq ASC").
		Limit(uint64(q.Limit))

	if q.Since != nil {
		builder = builder.Where(sq.Expr("(created_at, seq) > (?, ?)", *q.Since, q.AfterSeq))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("audit build query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "audit_entry", entityID)
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		var (
			e          domain.AuditEntry
			entityType string
		)
		err := rows.Scan(&e.ID, &e.Seq, &entityType, &e.EntityID, &e.Field,
			&e.OldValue, &e.NewValue, &e.ActorID, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("query audit_log: %w", err)
		}
		e.EntityType = domain.EntityType(entityType)
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "audit_entry", entityID)
	}

	return entries, nil
}

const pruneAuditSQL = `DELETE FROM audit_log WHERE created_at < $1`

// PruneBefore removes entries older than the threshold and returns the
// number deleted. Only the retention job calls this; the service layer
// never deletes history.
func (r *Repo) PruneBefore(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, pruneAuditSQL, threshold)
	if err != nil {
		return 0, postgres.MapError(err, "audit_entry", uuid.Nil)
	}

	return tag.RowsAffected(), nil
}
