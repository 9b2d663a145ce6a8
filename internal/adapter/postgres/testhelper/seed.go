package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oakline/realty-backend/internal/domain"
)

// SeedClient inserts a minimal client row and returns it.
func SeedClient(t *testing.T, pool *pgxpool.Pool) *domain.Client {
	t.Helper()

	c := &domain.Client{
		ID:        uuid.New(),
		Name:      "Seed Client " + uuid.NewString()[:8],
		BudgetMin: 400_000,
		BudgetMax: 800_000,
		Stage:     domain.LifecycleStageNew,
		Version:   1,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO clients (id, name, budget_min, budget_max, stage)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.BudgetMin, c.BudgetMax, c.Stage.String())
	if err != nil {
		t.Fatalf("testhelper: seed client: %v", err)
	}

	return c
}

// SeedProperty inserts a minimal available property row and returns it.
func SeedProperty(t *testing.T, pool *pgxpool.Pool) *domain.Property {
	t.Helper()

	p := &domain.Property{
		ID: uuid.New(),
		Address: domain.Address{
			Line1:      "1 Seed Street",
			City:       "Testville",
			Region:     "TS",
			PostalCode: "00000",
		},
		Price:   750_000,
		Status:  domain.PropertyStatusAvailable,
		Version: 1,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO properties (id, line1, city, region, postal_code, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Address.Line1, p.Address.City, p.Address.Region, p.Address.PostalCode,
		p.Price, p.Status.String())
	if err != nil {
		t.Fatalf("testhelper: seed property: %v", err)
	}

	return p
}

// SeedRelationship inserts a link of the given kind between the two entities.
func SeedRelationship(t *testing.T, pool *pgxpool.Pool, clientID, propertyID uuid.UUID, kind domain.RelationshipKind) *domain.Relationship {
	t.Helper()

	rel := &domain.Relationship{
		ID:         uuid.New(),
		ClientID:   clientID,
		PropertyID: propertyID,
		Kind:       kind,
		CreatedBy:  uuid.New(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO relationships (id, client_id, property_id, kind, created_by)
		VALUES ($1, $2, $3, $4, $5)`,
		rel.ID, rel.ClientID, rel.PropertyID, rel.Kind.String(), rel.CreatedBy)
	if err != nil {
		t.Fatalf("testhelper: seed relationship: %v", err)
	}

	return rel
}
