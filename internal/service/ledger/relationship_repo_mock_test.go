package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/oakline/realty-backend/internal/domain"
)

var _ relationshipRepo = &relationshipRepoMock{}

type relationshipRepoMock struct {
	CreateFunc            func(ctx context.Context, rel domain.Relationship) (*domain.Relationship, error)
	GetActiveContractFunc func(ctx context.Context, propertyID uuid.UUID) (*domain.Relationship, error)
	DemoteFunc            func(ctx context.Context, id uuid.UUID) (*domain.Relationship, error)
	PromoteFunc           func(ctx context.Context, id uuid.UUID) (*domain.Relationship, error)
	ListByClientFunc      func(ctx context.Context, clientID uuid.UUID) ([]*domain.Relationship, error)
	ListByPropertyFunc    func(ctx context.Context, propertyID uuid.UUID) ([]*domain.Relationship, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rel domain.Relationship
		}
		GetActiveContract []struct {
			Ctx        context.Context
			PropertyID uuid.UUID
		}
		Demote []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Promote []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByClient []struct {
			Ctx      context.Context
			ClientID uuid.UUID
		}
		ListByProperty []struct {
			Ctx        context.Context
			PropertyID uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockGetActiveContract sync.RWMutex
	lockDemote            sync.RWMutex
	lockPromote           sync.RWMutex
	lockListByClient      sync.RWMutex
	lockListByProperty    sync.RWMutex
}

func (mock *relationshipRepoMock) Create(ctx context.Context, rel domain.Relationship) (*domain.Relationship, error) {
	if mock.CreateFunc == nil {
		panic("relationshipRepoMock.CreateFunc: method is nil but relationshipRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rel domain.Relationship
	}{Ctx: ctx, Rel: rel}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rel)
}

func (mock *relationshipRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rel domain.Relationship
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *relationshipRepoMock) GetActiveContract(ctx context.Context, propertyID uuid.UUID) (*domain.Relationship, error) {
	if mock.GetActiveContractFunc == nil {
		panic("relationshipRepoMock.GetActiveContractFunc: method is nil but relationshipRepo.GetActiveContract was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		PropertyID uuid.UUID
	}{Ctx: ctx, PropertyID: propertyID}
	mock.lockGetActiveContract.Lock()
	mock.calls.GetActiveContract = append(mock.calls.GetActiveContract, callInfo)
	mock.lockGetActiveContract.Unlock()
	return mock.GetActiveContractFunc(ctx, propertyID)
}

func (mock *relationshipRepoMock) GetActiveContractCalls() []struct {
	Ctx        context.Context
	PropertyID uuid.UUID
} {
	mock.lockGetActiveContract.RLock()
	calls := mock.calls.GetActiveContract
	mock.lockGetActiveContract.RUnlock()
	return calls
}

func (mock *relationshipRepoMock) Demote(ctx context.Context, id uuid.UUID) (*domain.Relationship, error) {
	if mock.DemoteFunc == nil {
		panic("relationshipRepoMock.DemoteFunc: method is nil but relationshipRepo.Demote was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDemote.Lock()
	mock.calls.Demote = append(mock.calls.Demote, callInfo)
	mock.lockDemote.Unlock()
	return mock.DemoteFunc(ctx, id)
}

func (mock *relationshipRepoMock) DemoteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDemote.RLock()
	calls := mock.calls.Demote
	mock.lockDemote.RUnlock()
	return calls
}

func (mock *relationshipRepoMock) Promote(ctx context.Context, id uuid.UUID) (*domain.Relationship, error) {
	if mock.PromoteFunc == nil {
		panic("relationshipRepoMock.PromoteFunc: method is nil but relationshipRepo.Promote was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockPromote.Lock()
	mock.calls.Promote = append(mock.calls.Promote, callInfo)
	mock.lockPromote.Unlock()
	return mock.PromoteFunc(ctx, id)
}

func (mock *relationshipRepoMock) PromoteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockPromote.RLock()
	calls := mock.calls.Promote
	mock.lockPromote.RUnlock()
	return calls
}

func (mock *relationshipRepoMock) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Relationship, error) {
	if mock.ListByClientFunc == nil {
		panic("relationshipRepoMock.ListByClientFunc: method is nil but relationshipRepo.ListByClient was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ClientID uuid.UUID
	}{Ctx: ctx, ClientID: clientID}
	mock.lockListByClient.Lock()
	mock.calls.ListByClient = append(mock.calls.ListByClient, callInfo)
	mock.lockListByClient.Unlock()
	return mock.ListByClientFunc(ctx, clientID)
}

func (mock *relationshipRepoMock) ListByClientCalls() []struct {
	Ctx      context.Context
	ClientID uuid.UUID
} {
	mock.lockListByClient.RLock()
	calls := mock.calls.ListByClient
	mock.lockListByClient.RUnlock()
	return calls
}

func (mock *relationshipRepoMock) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*domain.Relationship, error) {
	if mock.ListByPropertyFunc == nil {
		panic("relationshipRepoMock.ListByPropertyFunc: method is nil but relationshipRepo.ListByProperty was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		PropertyID uuid.UUID
	}{Ctx: ctx, PropertyID: propertyID}
	mock.lockListByProperty.Lock()
	mock.calls.ListByProperty = append(mock.calls.ListByProperty, callInfo)
	mock.lockListByProperty.Unlock()
	return mock.ListByPropertyFunc(ctx, propertyID)
}

func (mock *relationshipRepoMock) ListByPropertyCalls() []struct {
	Ctx        context.Context
	PropertyID uuid.UUID
} {
	mock.lockListByProperty.RLock()
	calls := mock.calls.ListByProperty
	mock.lockListByProperty.RUnlock()
	return calls
}
