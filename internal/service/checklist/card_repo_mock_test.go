package checklist

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"sync"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	LockFunc func(ctx context.Context, cardID uuid.UUID) (*domain.CardLocation, error)

	calls struct {
		Lock []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
	}
	lockLock sync.RWMutex
}

func (mock *cardRepoMock) Lock(ctx context.Context, cardID uuid.UUID) (*domain.CardLocation, error) {
	if mock.LockFunc == nil {
		panic("cardRepoMock.LockFunc: method is nil but cardRepo.Lock was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	return mock.LockFunc(ctx, cardID)
}

func (mock *cardRepoMock) LockCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockLock.RLock()
	calls := mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}
