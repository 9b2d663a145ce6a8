package property

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

var _ propertyRepo = &propertyRepoMock{}

type propertyRepoMock struct {
	CreateFunc       func(ctx context.Context, p domain.Property) (*domain.Property, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	UpdateFunc       func(ctx context.Context, id uuid.UUID, params domain.PropertyUpdateParams, expectedVersion int64) (*domain.Property, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.PropertyStatus, expectedVersion int64) (*domain.Property, error)
	ArchiveFunc      func(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	ListFunc         func(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Property
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx             context.Context
			ID              uuid.UUID
			Params          domain.PropertyUpdateParams
			ExpectedVersion int64
		}
		UpdateStatus []struct {
			Ctx             context.Context
			ID              uuid.UUID
			Status          domain.PropertyStatus
			ExpectedVersion int64
		}
		Archive []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.PropertyFilter
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockUpdate       sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockArchive      sync.RWMutex
	lockList         sync.RWMutex
}

func (mock *propertyRepoMock) Create(ctx context.Context, p domain.Property) (*domain.Property, error) {
	if mock.CreateFunc == nil {
		panic("propertyRepoMock.CreateFunc: method is nil but propertyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Property
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *propertyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Property
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *propertyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	if mock.GetByIDFunc == nil {
		panic("propertyRepoMock.GetByIDFunc: method is nil but propertyRepo.GetByID was just called")
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

func (mock *propertyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *propertyRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.PropertyUpdateParams, expectedVersion int64) (*domain.Property, error) {
	if mock.UpdateFunc == nil {
		panic("propertyRepoMock.UpdateFunc: method is nil but propertyRepo.Update was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ID              uuid.UUID
		Params          domain.PropertyUpdateParams
		ExpectedVersion int64
	}{Ctx: ctx, ID: id, Params: params, ExpectedVersion: expectedVersion}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params, expectedVersion)
}

func (mock *propertyRepoMock) UpdateCalls() []struct {
	Ctx             context.Context
	ID              uuid.UUID
	Params          domain.PropertyUpdateParams
	ExpectedVersion int64
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *propertyRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PropertyStatus, expectedVersion int64) (*domain.Property, error) {
	if mock.UpdateStatusFunc == nil {
		panic("propertyRepoMock.UpdateStatusFunc: method is nil but propertyRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ID              uuid.UUID
		Status          domain.PropertyStatus
		ExpectedVersion int64
	}{Ctx: ctx, ID: id, Status: status, ExpectedVersion: expectedVersion}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, expectedVersion)
}

func (mock *propertyRepoMock) UpdateStatusCalls() []struct {
	Ctx             context.Context
	ID              uuid.UUID
	Status          domain.PropertyStatus
	ExpectedVersion int64
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *propertyRepoMock) Archive(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	if mock.ArchiveFunc == nil {
		panic("propertyRepoMock.ArchiveFunc: method is nil but propertyRepo.Archive was just called")
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

func (mock *propertyRepoMock) ArchiveCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockArchive.RLock()
	calls := mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}

func (mock *propertyRepoMock) List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	if mock.ListFunc == nil {
		panic("propertyRepoMock.ListFunc: method is nil but propertyRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.PropertyFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *propertyRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.PropertyFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
