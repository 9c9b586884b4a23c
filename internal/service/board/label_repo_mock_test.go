package board

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"sync"
)

var _ labelRepo = &labelRepoMock{}

type labelRepoMock struct {
	CreateFunc      func(ctx context.Context, label *domain.Label) (*domain.Label, error)
	ListByBoardFunc func(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Label *domain.Label
		}
		ListByBoard []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockListByBoard sync.RWMutex
}

func (mock *labelRepoMock) Create(ctx context.Context, label *domain.Label) (*domain.Label, error) {
	if mock.CreateFunc == nil {
		panic("labelRepoMock.CreateFunc: method is nil but labelRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Label *domain.Label
	}{Ctx: ctx, Label: label}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, label)
}

func (mock *labelRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Label *domain.Label
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *labelRepoMock) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error) {
	if mock.ListByBoardFunc == nil {
		panic("labelRepoMock.ListByBoardFunc: method is nil but labelRepo.ListByBoard was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{Ctx: ctx, BoardID: boardID}
	mock.lockListByBoard.Lock()
	mock.calls.ListByBoard = append(mock.calls.ListByBoard, callInfo)
	mock.lockListByBoard.Unlock()
	return mock.ListByBoardFunc(ctx, boardID)
}

func (mock *labelRepoMock) ListByBoardCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockListByBoard.RLock()
	calls := mock.calls.ListByBoard
	mock.lockListByBoard.RUnlock()
	return calls
}
