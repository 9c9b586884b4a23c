package card

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"sync"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	GetAccessFunc   func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.BoardAccess, error)
	ListMembersFunc func(ctx context.Context, boardID uuid.UUID) ([]domain.BoardMember, error)

	calls struct {
		GetAccess []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
		}
		ListMembers []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
	}
	lockGetAccess sync.RWMutex
	lockListMembers sync.RWMutex
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

func (mock *boardRepoMock) ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.BoardMember, error) {
	if mock.ListMembersFunc == nil {
		panic("boardRepoMock.ListMembersFunc: method is nil but boardRepo.ListMembers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{Ctx: ctx, BoardID: boardID}
	mock.lockListMembers.Lock()
	mock.calls.ListMembers = append(mock.calls.ListMembers, callInfo)
	mock.lockListMembers.Unlock()
	return mock.ListMembersFunc(ctx, boardID)
}

func (mock *boardRepoMock) ListMembersCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockListMembers.RLock()
	calls := mock.calls.ListMembers
	mock.lockListMembers.RUnlock()
	return calls
}
