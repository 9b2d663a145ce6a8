package ledger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/internal/notify"
)

//go:generate moq -out property_repo_mock_test.go . propertyRepo
//go:generate moq -out client_repo_mock_test.go . clientRepo
//go:generate moq -out relationship_repo_mock_test.go . relationshipRepo

const testTimeout = 5 * time.Second

// newTestService creates a Service with the given mocks and a default logger.
func newTestService(
	t *testing.T,
	propMock *propertyRepoMock,
	clientMock *clientRepoMock,
	linkMock *relationshipRepoMock,
	auditMock *auditAppenderMock,
	txMock *txManagerMock,
	dispatchMock *transitionDispatcherMock,
) *Service {
	t.Helper()
	return NewService(
		slog.Default(),
		propMock,
		clientMock,
		linkMock,
		auditMock,
		txMock,
		dispatchMock,
		testTimeout,
	)
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

// defaultAuditMock returns an auditAppenderMock that always succeeds.
func defaultAuditMock() *auditAppenderMock {
	return &auditAppenderMock{
		AppendFunc: func(ctx context.Context, entries []domain.AuditEntry) error {
			return nil
		},
	}
}

// defaultDispatchMock returns a transitionDispatcherMock that swallows events.
func defaultDispatchMock() *transitionDispatcherMock {
	return &transitionDispatcherMock{
		DispatchFunc: func(event notify.Event) {},
	}
}

func availableProperty(id uuid.UUID) *domain.Property {
	now := time.Now().UTC()
	return &domain.Property{
		ID: id,
		Address: domain.Address{
			Line1:      "12 Maple Ave",
			City:       "Springfield",
			Region:     "IL",
			PostalCode: "62704",
		},
		Price:     31900000,
		Status:    domain.PropertyStatusAvailable,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func activeClient(id uuid.UUID) *domain.Client {
	now := time.Now().UTC()
	return &domain.Client{
		ID:        id,
		Name:      "Dana Whitfield",
		Stage:     domain.LifecycleStageActive,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
