package property

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

const testTimeout = 5 * time.Second

func newTestService(
	t *testing.T,
	repoMock *propertyRepoMock,
	auditMock *auditAppenderMock,
	txMock *txManagerMock,
	dispatchMock *statusDispatcherMock,
) *Service {
	t.Helper()
	return NewService(slog.Default(), repoMock, auditMock, txMock, dispatchMock, testTimeout)
}

func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func defaultAuditMock() *auditAppenderMock {
	return &auditAppenderMock{
		AppendFunc: func(ctx context.Context, entries []domain.AuditEntry) error {
			return nil
		},
	}
}

func defaultDispatchMock() *statusDispatcherMock {
	return &statusDispatcherMock{
		DispatchFunc: func(event notify.Event) {},
	}
}

func storedProperty(id uuid.UUID) *domain.Property {
	now := time.Now().UTC()
	return &domain.Property{
		ID: id,
		Address: domain.Address{
			Line1:      "4 Birch Court",
			City:       "Portland",
			Region:     "OR",
			PostalCode: "97205",
		},
		Price:     52500000,
		Status:    domain.PropertyStatusAvailable,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
