package card

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"sync"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	LockFunc func(ctx context.Context, listID uuid.UUID) (*domain.List, error)

	calls struct {
		Lock []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
	}
	lockLock sync.RWMutex
}

func (mock *listRepoMock) Lock(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
	if mock.LockFunc == nil {
		panic("listRepoMock.LockFunc: method is nil but listRepo.Lock was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	return mock.LockFunc(ctx, listID)
}

func (mock *listRepoMock) LockCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockLock.RLock()
	calls := mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}
