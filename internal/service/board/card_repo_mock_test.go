package board

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"sync"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ListByBoardFunc func(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.Card, error)

	calls struct {
		ListByBoard []struct {
			Ctx             context.Context
			BoardID         uuid.UUID
			IncludeArchived bool
		}
	}
	lockListByBoard sync.RWMutex
}

func (mock *cardRepoMock) ListByBoard(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.Card, error) {
	if mock.ListByBoardFunc == nil {
		panic("cardRepoMock.ListByBoardFunc: method is nil but cardRepo.ListByBoard was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		BoardID         uuid.UUID
		IncludeArchived bool
	}{Ctx: ctx, BoardID: boardID, IncludeArchived: includeArchived}
	mock.lockListByBoard.Lock()
	mock.calls.ListByBoard = append(mock.calls.ListByBoard, callInfo)
	mock.lockListByBoard.Unlock()
	return mock.ListByBoardFunc(ctx, boardID, includeArchived)
}

func (mock *cardRepoMock) ListByBoardCalls() []struct {
	Ctx             context.Context
	BoardID         uuid.UUID
	IncludeArchived bool
} {
	mock.lockListByBoard.RLock()
	calls := mock.calls.ListByBoard
	mock.lockListByBoard.RUnlock()
	return calls
}
