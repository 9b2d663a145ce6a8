package client

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	CreateFunc      func(ctx context.Context, c domain.Client) (*domain.Client, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, params domain.ClientUpdateParams, expectedVersion int64) (*domain.Client, error)
	UpdateStageFunc func(ctx context.Context, id uuid.UUID, stage domain.LifecycleStage, expectedVersion int64) (*domain.Client, error)
	ArchiveFunc     func(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	ListFunc        func(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Client
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx             context.Context
			ID              uuid.UUID
			Params          domain.ClientUpdateParams
			ExpectedVersion int64
		}
		UpdateStage []struct {
			Ctx             context.Context
			ID              uuid.UUID
			Stage           domain.LifecycleStage
			ExpectedVersion int64
		}
		Archive []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ClientFilter
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockUpdate      sync.RWMutex
	lockUpdateStage sync.RWMutex
	lockArchive     sync.RWMutex
	lockList        sync.RWMutex
}

func (mock *clientRepoMock) Create(ctx context.Context, c domain.Client) (*domain.Client, error) {
	if mock.CreateFunc == nil {
		panic("clientRepoMock.CreateFunc: method is nil but clientRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Client
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *clientRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Client
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *clientRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ClientUpdateParams, expectedVersion int64) (*domain.Client, error) {
	if mock.UpdateFunc == nil {
		panic("clientRepoMock.UpdateFunc: method is nil but clientRepo.Update was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ID              uuid.UUID
		Params          domain.ClientUpdateParams
		ExpectedVersion int64
	}{Ctx: ctx, ID: id, Params: params, ExpectedVersion: expectedVersion}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params, expectedVersion)
}

func (mock *clientRepoMock) UpdateCalls() []struct {
	Ctx             context.Context
	ID              uuid.UUID
	Params          domain.ClientUpdateParams
	ExpectedVersion int64
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *clientRepoMock) UpdateStage(ctx context.Context, id uuid.UUID, stage domain.LifecycleStage, expectedVersion int64) (*domain.Client, error) {
	if mock.UpdateStageFunc == nil {
		panic("clientRepoMock.UpdateStageFunc: method is nil but clientRepo.UpdateStage was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ID              uuid.UUID
		Stage           domain.LifecycleStage
		ExpectedVersion int64
	}{Ctx: ctx, ID: id, Stage: stage, ExpectedVersion: expectedVersion}
	mock.lockUpdateStage.Lock()
	mock.calls.UpdateStage = append(mock.calls.UpdateStage, callInfo)
	mock.lockUpdateStage.Unlock()
	return mock.UpdateStageFunc(ctx, id, stage, expectedVersion)
}

func (mock *clientRepoMock) UpdateStageCalls() []struct {
	Ctx             context.Context
	ID              uuid.UUID
	Stage           domain.LifecycleStage
	ExpectedVersion int64
} {
	mock.lockUpdateStage.RLock()
	calls := mock.calls.UpdateStage
	mock.lockUpdateStage.RUnlock()
	return calls
}

func (mock *clientRepoMock) Archive(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	if mock.ArchiveFunc == nil {
		panic("clientRepoMock.ArchiveFunc: method is nil but clientRepo.Archive was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, callInfo)
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, id)
}

func (mock *clientRepoMock) ArchiveCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockArchive.RLock()
	calls := mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}

func (mock *clientRepoMock) List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error) {
	if mock.ListFunc == nil {
		panic("clientRepoMock.ListFunc: method is nil but clientRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ClientFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *clientRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ClientFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
