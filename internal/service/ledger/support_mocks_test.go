package ledger

import (
	"context"
	"sync"

	"github.com/oakline/realty-backend/internal/domain"
	"github.com/oakline/realty-backend/internal/notify"
)

var (
	_ auditAppender        = &auditAppenderMock{}
	_ txManager            = &txManagerMock{}
	_ transitionDispatcher = &transitionDispatcherMock{}
)

type auditAppenderMock struct {
	AppendFunc func(ctx context.Context, entries []domain.AuditEntry) error

	calls struct {
		Append []struct {
			Ctx     context.Context
			Entries []domain.AuditEntry
		}
	}
	lockAppend sync.RWMutex
}

func (mock *auditAppenderMock) Append(ctx context.Context, entries []domain.AuditEntry) error {
	if mock.AppendFunc == nil {
		panic("auditAppenderMock.AppendFunc: method is nil but auditAppender.Append was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entries []domain.AuditEntry
	}{Ctx: ctx, Entries: entries}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, entries)
}

func (mock *auditAppenderMock) AppendCalls() []struct {
	Ctx     context.Context
	Entries []domain.AuditEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

type transitionDispatcherMock struct {
	DispatchFunc func(event notify.Event)

	calls struct {
		Dispatch []struct {
			Event notify.Event
		}
	}
	lockDispatch sync.RWMutex
}

func (mock *transitionDispatcherMock) Dispatch(event notify.Event) {
	if mock.DispatchFunc == nil {
		panic("transitionDispatcherMock.DispatchFunc: method is nil but transitionDispatcher.Dispatch was just called")
	}
	callInfo := struct {
		Event notify.Event
	}{Event: event}
	mock.lockDispatch.Lock()
	mock.calls.Dispatch = append(mock.calls.Dispatch, callInfo)
	mock.lockDispatch.Unlock()
	mock.DispatchFunc(event)
}

func (mock *transitionDispatcherMock) DispatchCalls() []struct {
	Event notify.Event
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}
