package comment

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"sync"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	GetAccessFunc func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.BoardAccess, error)

	calls struct {
		GetAccess []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
		}
	}
	lockGetAccess sync.RWMutex
}

func (mock *boardRepoMock) GetAccess(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.BoardAccess, error) {
	if mock.GetAccessFunc == nil {
		panic("boardRepoMock.GetAccessFunc: method is nil but boardRepo.GetAccess was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, BoardID: boardID, UserID: userID}
	mock.lockGetAccess.Lock()
	mock.calls.GetAccess = append(mock.calls.GetAccess, callInfo)
	mock.lockGetAccess.Unlock()
	return mock.GetAccessFunc(ctx, boardID, userID)
}

func (mock *boardRepoMock) GetAccessCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockGetAccess.RLock()
	calls := mock.calls.GetAccess
	mock.lockGetAccess.RUnlock()
	return calls
}
