package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Client, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *clientRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	if mock.GetByIDFunc == nil {
		panic("clientRepoMock.GetByIDFunc: method is nil but clientRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *clientRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
