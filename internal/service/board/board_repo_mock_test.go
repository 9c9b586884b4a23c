package board

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"sync"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	CreateFunc       func(ctx context.Context, board *domain.Board) (*domain.Board, error)
	DeleteFunc       func(ctx context.Context, boardID uuid.UUID) error
	GetAccessFunc    func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.BoardAccess, error)
	ListMembersFunc  func(ctx context.Context, boardID uuid.UUID) ([]domain.BoardMember, error)
	ListVisibleFunc  func(ctx context.Context, filter domain.BoardFilter) ([]domain.Board, error)
	RemoveMemberFunc func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) error
	SetArchivedFunc  func(ctx context.Context, boardID uuid.UUID, archived bool) (*domain.Board, error)
	UpdateFunc       func(ctx context.Context, boardID uuid.UUID, params domain.BoardUpdateParams) (*domain.Board, error)
	UpsertMemberFunc func(ctx context.Context, member domain.BoardMember) (*domain.BoardMember, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Board *domain.Board
		}
		Delete []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
		GetAccess []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
		}
		ListMembers []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
		ListVisible []struct {
			Ctx    context.Context
			Filter domain.BoardFilter
		}
		RemoveMember []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
		}
		SetArchived []struct {
			Ctx      context.Context
			BoardID  uuid.UUID
			Archived bool
		}
		Update []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			Params  domain.BoardUpdateParams
		}
		UpsertMember []struct {
			Ctx    context.Context
			Member domain.BoardMember
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGetAccess sync.RWMutex
	lockListMembers sync.RWMutex
	lockListVisible sync.RWMutex
	lockRemoveMember sync.RWMutex
	lockSetArchived sync.RWMutex
	lockUpdate sync.RWMutex
	lockUpsertMember sync.RWMutex
}

func (mock *boardRepoMock) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	if mock.CreateFunc == nil {
		panic("boardRepoMock.CreateFunc: method is nil but boardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Board *domain.Board
	}{Ctx: ctx, Board: board}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, board)
}

func (mock *boardRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Board *domain.Board
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *boardRepoMock) Delete(ctx context.Context, boardID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("boardRepoMock.DeleteFunc: method is nil but boardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{Ctx: ctx, BoardID: boardID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, boardID)
}

func (mock *boardRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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

func (mock *boardRepoMock) ListVisible(ctx context.Context, filter domain.BoardFilter) ([]domain.Board, error) {
	if mock.ListVisibleFunc == nil {
		panic("boardRepoMock.ListVisibleFunc: method is nil but boardRepo.ListVisible was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.BoardFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockListVisible.Lock()
	mock.calls.ListVisible = append(mock.calls.ListVisible, callInfo)
	mock.lockListVisible.Unlock()
	return mock.ListVisibleFunc(ctx, filter)
}

func (mock *boardRepoMock) ListVisibleCalls() []struct {
	Ctx    context.Context
	Filter domain.BoardFilter
} {
	mock.lockListVisible.RLock()
	calls := mock.calls.ListVisible
	mock.lockListVisible.RUnlock()
	return calls
}

func (mock *boardRepoMock) RemoveMember(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) error {
	if mock.RemoveMemberFunc == nil {
		panic("boardRepoMock.RemoveMemberFunc: method is nil but boardRepo.RemoveMember was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, BoardID: boardID, UserID: userID}
	mock.lockRemoveMember.Lock()
	mock.calls.RemoveMember = append(mock.calls.RemoveMember, callInfo)
	mock.lockRemoveMember.Unlock()
	return mock.RemoveMemberFunc(ctx, boardID, userID)
}

func (mock *boardRepoMock) RemoveMemberCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockRemoveMember.RLock()
	calls := mock.calls.RemoveMember
	mock.lockRemoveMember.RUnlock()
	return calls
}

func (mock *boardRepoMock) SetArchived(ctx context.Context, boardID uuid.UUID, archived bool) (*domain.Board, error) {
	if mock.SetArchivedFunc == nil {
		panic("boardRepoMock.SetArchivedFunc: method is nil but boardRepo.SetArchived was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		BoardID  uuid.UUID
		Archived bool
	}{Ctx: ctx, BoardID: boardID, Archived: archived}
	mock.lockSetArchived.Lock()
	mock.calls.SetArchived = append(mock.calls.SetArchived, callInfo)
	mock.lockSetArchived.Unlock()
	return mock.SetArchivedFunc(ctx, boardID, archived)
}

func (mock *boardRepoMock) SetArchivedCalls() []struct {
	Ctx      context.Context
	BoardID  uuid.UUID
	Archived bool
} {
	mock.lockSetArchived.RLock()
	calls := mock.calls.SetArchived
	mock.lockSetArchived.RUnlock()
	return calls
}

func (mock *boardRepoMock) Update(ctx context.Context, boardID uuid.UUID, params domain.BoardUpdateParams) (*domain.Board, error) {
	if mock.UpdateFunc == nil {
		panic("boardRepoMock.UpdateFunc: method is nil but boardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		Params  domain.BoardUpdateParams
	}{Ctx: ctx, BoardID: boardID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, boardID, params)
}

func (mock *boardRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	Params  domain.BoardUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *boardRepoMock) UpsertMember(ctx context.Context, member domain.BoardMember) (*domain.BoardMember, error) {
	if mock.UpsertMemberFunc == nil {
		panic("boardRepoMock.UpsertMemberFunc: method is nil but boardRepo.UpsertMember was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Member domain.BoardMember
	}{Ctx: ctx, Member: member}
	mock.lockUpsertMember.Lock()
	mock.calls.UpsertMember = append(mock.calls.UpsertMember, callInfo)
	mock.lockUpsertMember.Unlock()
	return mock.UpsertMemberFunc(ctx, member)
}

func (mock *boardRepoMock) UpsertMemberCalls() []struct {
	Ctx    context.Context
	Member domain.BoardMember
} {
	mock.lockUpsertMember.RLock()
	calls := mock.calls.UpsertMember
	mock.lockUpsertMember.RUnlock()
	return calls
}
