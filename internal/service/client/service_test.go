package client

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/internal/notify"
)

//go:generate moq -out client_repo_mock_test.go . clientRepo

const testTimeout = 5 * time.Second

func newTestService(
	t *testing.T,
	repoMock *clientRepoMock,
	auditMock *auditAppenderMock,
	txMock *txManagerMock,
	dispatchMock *stageDispatcherMock,
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

func defaultDispatchMock() *stageDispatcherMock {
	return &stageDispatcherMock{
		DispatchFunc: func(event notify.Event) {},
	}
}

func storedClient(id uuid.UUID) *domain.Client {
	now := time.Now().UTC()
	return &domain.Client{
		ID:        id,
		Name:      "Priya Raman",
		BudgetMin: 20000000,
		BudgetMax: 45000000,
		Stage:     domain.LifecycleStageNew,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
