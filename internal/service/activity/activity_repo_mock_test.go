package activity

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"sync"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	ListByBoardFunc func(ctx context.Context, boardID uuid.UUID, before *domain.ActivityCursor, limit int) ([]domain.Activity, error)

	calls struct {
		ListByBoard []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			Before  *domain.ActivityCursor
			Limit   int
		}
	}
	lockListByBoard sync.RWMutex
}

func (mock *activityRepoMock) ListByBoard(ctx context.Context, boardID uuid.UUID, before *domain.ActivityCursor, limit int) ([]domain.Activity, error) {
	if mock.ListByBoardFunc == nil {
		panic("activityRepoMock.ListByBoardFunc: method is nil but activityRepo.ListByBoard was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		Before  *domain.ActivityCursor
		Limit   int
	}{Ctx: ctx, BoardID: boardID, Before: before, Limit: limit}
	mock.lockListByBoard.Lock()
	mock.calls.ListByBoard = append(mock.calls.ListByBoard, callInfo)
	mock.lockListByBoard.Unlock()
	return mock.ListByBoardFunc(ctx, boardID, before, limit)
}

func (mock *activityRepoMock) ListByBoardCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	Before  *domain.ActivityCursor
	Limit   int
} {
	mock.lockListByBoard.RLock()
	calls := mock.calls.ListByBoard
	mock.lockListByBoard.RUnlock()
	return calls
}
