package card

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"sync"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	CreateFunc         func(ctx context.Context, card *domain.Card) (*domain.Card, error)
	DeleteFunc         func(ctx context.Context, cardID uuid.UUID) error
	GetByIDFunc        func(ctx context.Context, cardID uuid.UUID) (*domain.CardLocation, error)
	LabelsFunc         func(ctx context.Context, cardID uuid.UUID) ([]domain.Label, error)
	LockFunc           func(ctx context.Context, cardID uuid.UUID) (*domain.CardLocation, error)
	MaxPositionFunc    func(ctx context.Context, listID uuid.UUID) (*int64, error)
	MemberIDsFunc      func(ctx context.Context, cardID uuid.UUID) ([]uuid.UUID, error)
	ReplaceLabelsFunc  func(ctx context.Context, cardID uuid.UUID, labelIDs []uuid.UUID) error
	ReplaceMembersFunc func(ctx context.Context, cardID uuid.UUID, userIDs []uuid.UUID) error
	RepositionFunc     func(ctx context.Context, listID uuid.UUID, movedID uuid.UUID, ids []uuid.UUID, positions []int64) error
	SetArchivedFunc    func(ctx context.Context, cardID uuid.UUID, archived bool) (*domain.Card, error)
	SiblingsFunc       func(ctx context.Context, listID uuid.UUID, excludeID uuid.UUID) ([]domain.Sibling, error)
	UpdateFunc         func(ctx context.Context, cardID uuid.UUID, params domain.CardUpdateParams) (*domain.Card, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Card *domain.Card
		}
		Delete []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		GetByID []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		Labels []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		Lock []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		MaxPosition []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		MemberIDs []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		ReplaceLabels []struct {
			Ctx      context.Context
			CardID   uuid.UUID
			LabelIDs []uuid.UUID
		}
		ReplaceMembers []struct {
			Ctx     context.Context
			CardID  uuid.UUID
			UserIDs []uuid.UUID
		}
		Reposition []struct {
			Ctx       context.Context
			ListID    uuid.UUID
			MovedID   uuid.UUID
			Ids       []uuid.UUID
			Positions []int64
		}
		SetArchived []struct {
			Ctx      context.Context
			CardID   uuid.UUID
			Archived bool
		}
		Siblings []struct {
			Ctx       context.Context
			ListID    uuid.UUID
			ExcludeID uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			CardID uuid.UUID
			Params domain.CardUpdateParams
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGetByID sync.RWMutex
	lockLabels sync.RWMutex
	lockLock sync.RWMutex
	lockMaxPosition sync.RWMutex
	lockMemberIDs sync.RWMutex
	lockReplaceLabels sync.RWMutex
	lockReplaceMembers sync.RWMutex
	lockReposition sync.RWMutex
	lockSetArchived sync.RWMutex
	lockSiblings sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *cardRepoMock) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card *domain.Card
	}{Ctx: ctx, Card: card}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, card)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Card *domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, cardID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, cardID)
}

func (mock *cardRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetByID(ctx context.Context, cardID uuid.UUID) (*domain.CardLocation, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, cardID)
}

func (mock *cardRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) Labels(ctx context.Context, cardID uuid.UUID) ([]domain.Label, error) {
	if mock.LabelsFunc == nil {
		panic("cardRepoMock.LabelsFunc: method is nil but cardRepo.Labels was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockLabels.Lock()
	mock.calls.Labels = append(mock.calls.Labels, callInfo)
	mock.lockLabels.Unlock()
	return mock.LabelsFunc(ctx, cardID)
}

func (mock *cardRepoMock) LabelsCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockLabels.RLock()
	calls := mock.calls.Labels
	mock.lockLabels.RUnlock()
	return calls
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

func (mock *cardRepoMock) MaxPosition(ctx context.Context, listID uuid.UUID) (*int64, error) {
	if mock.MaxPositionFunc == nil {
		panic("cardRepoMock.MaxPositionFunc: method is nil but cardRepo.MaxPosition was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockMaxPosition.Lock()
	mock.calls.MaxPosition = append(mock.calls.MaxPosition, callInfo)
	mock.lockMaxPosition.Unlock()
	return mock.MaxPositionFunc(ctx, listID)
}

func (mock *cardRepoMock) MaxPositionCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockMaxPosition.RLock()
	calls := mock.calls.MaxPosition
	mock.lockMaxPosition.RUnlock()
	return calls
}

func (mock *cardRepoMock) MemberIDs(ctx context.Context, cardID uuid.UUID) ([]uuid.UUID, error) {
	if mock.MemberIDsFunc == nil {
		panic("cardRepoMock.MemberIDsFunc: method is nil but cardRepo.MemberIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockMemberIDs.Lock()
	mock.calls.MemberIDs = append(mock.calls.MemberIDs, callInfo)
	mock.lockMemberIDs.Unlock()
	return mock.MemberIDsFunc(ctx, cardID)
}

func (mock *cardRepoMock) MemberIDsCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockMemberIDs.RLock()
	calls := mock.calls.MemberIDs
	mock.lockMemberIDs.RUnlock()
	return calls
}

func (mock *cardRepoMock) ReplaceLabels(ctx context.Context, cardID uuid.UUID, labelIDs []uuid.UUID) error {
	if mock.ReplaceLabelsFunc == nil {
		panic("cardRepoMock.ReplaceLabelsFunc: method is nil but cardRepo.ReplaceLabels was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CardID   uuid.UUID
		LabelIDs []uuid.UUID
	}{Ctx: ctx, CardID: cardID, LabelIDs: labelIDs}
	mock.lockReplaceLabels.Lock()
	mock.calls.ReplaceLabels = append(mock.calls.ReplaceLabels, callInfo)
	mock.lockReplaceLabels.Unlock()
	return mock.ReplaceLabelsFunc(ctx, cardID, labelIDs)
}

func (mock *cardRepoMock) ReplaceLabelsCalls() []struct {
	Ctx      context.Context
	CardID   uuid.UUID
	LabelIDs []uuid.UUID
} {
	mock.lockReplaceLabels.RLock()
	calls := mock.calls.ReplaceLabels
	mock.lockReplaceLabels.RUnlock()
	return calls
}

func (mock *cardRepoMock) ReplaceMembers(ctx context.Context, cardID uuid.UUID, userIDs []uuid.UUID) error {
	if mock.ReplaceMembersFunc == nil {
		panic("cardRepoMock.ReplaceMembersFunc: method is nil but cardRepo.ReplaceMembers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		CardID  uuid.UUID
		UserIDs []uuid.UUID
	}{Ctx: ctx, CardID: cardID, UserIDs: userIDs}
	mock.lockReplaceMembers.Lock()
	mock.calls.ReplaceMembers = append(mock.calls.ReplaceMembers, callInfo)
	mock.lockReplaceMembers.Unlock()
	return mock.ReplaceMembersFunc(ctx, cardID, userIDs)
}

func (mock *cardRepoMock) ReplaceMembersCalls() []struct {
	Ctx     context.Context
	CardID  uuid.UUID
	UserIDs []uuid.UUID
} {
	mock.lockReplaceMembers.RLock()
	calls := mock.calls.ReplaceMembers
	mock.lockReplaceMembers.RUnlock()
	return calls
}

func (mock *cardRepoMock) Reposition(ctx context.Context, listID uuid.UUID, movedID uuid.UUID, ids []uuid.UUID, positions []int64) error {
	if mock.RepositionFunc == nil {
		panic("cardRepoMock.RepositionFunc: method is nil but cardRepo.Reposition was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ListID    uuid.UUID
		MovedID   uuid.UUID
		Ids       []uuid.UUID
		Positions []int64
	}{Ctx: ctx, ListID: listID, MovedID: movedID, Ids: ids, Positions: positions}
	mock.lockReposition.Lock()
	mock.calls.Reposition = append(mock.calls.Reposition, callInfo)
	mock.lockReposition.Unlock()
	return mock.RepositionFunc(ctx, listID, movedID, ids, positions)
}

func (mock *cardRepoMock) RepositionCalls() []struct {
	Ctx       context.Context
	ListID    uuid.UUID
	MovedID   uuid.UUID
	Ids       []uuid.UUID
	Positions []int64
} {
	mock.lockReposition.RLock()
	calls := mock.calls.Reposition
	mock.lockReposition.RUnlock()
	return calls
}

func (mock *cardRepoMock) SetArchived(ctx context.Context, cardID uuid.UUID, archived bool) (*domain.Card, error) {
	if mock.SetArchivedFunc == nil {
		panic("cardRepoMock.SetArchivedFunc: method is nil but cardRepo.SetArchived was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CardID   uuid.UUID
		Archived bool
	}{Ctx: ctx, CardID: cardID, Archived: archived}
	mock.lockSetArchived.Lock()
	mock.calls.SetArchived = append(mock.calls.SetArchived, callInfo)
	mock.lockSetArchived.Unlock()
	return mock.SetArchivedFunc(ctx, cardID, archived)
}

func (mock *cardRepoMock) SetArchivedCalls() []struct {
	Ctx      context.Context
	CardID   uuid.UUID
	Archived bool
} {
	mock.lockSetArchived.RLock()
	calls := mock.calls.SetArchived
	mock.lockSetArchived.RUnlock()
	return calls
}

func (mock *cardRepoMock) Siblings(ctx context.Context, listID uuid.UUID, excludeID uuid.UUID) ([]domain.Sibling, error) {
	if mock.SiblingsFunc == nil {
		panic("cardRepoMock.SiblingsFunc: method is nil but cardRepo.Siblings was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ListID    uuid.UUID
		ExcludeID uuid.UUID
	}{Ctx: ctx, ListID: listID, ExcludeID: excludeID}
	mock.lockSiblings.Lock()
	mock.calls.Siblings = append(mock.calls.Siblings, callInfo)
	mock.lockSiblings.Unlock()
	return mock.SiblingsFunc(ctx, listID, excludeID)
}

func (mock *cardRepoMock) SiblingsCalls() []struct {
	Ctx       context.Context
	ListID    uuid.UUID
	ExcludeID uuid.UUID
} {
	mock.lockSiblings.RLock()
	calls := mock.calls.Siblings
	mock.lockSiblings.RUnlock()
	return calls
}

func (mock *cardRepoMock) Update(ctx context.Context, cardID uuid.UUID, params domain.CardUpdateParams) (*domain.Card, error) {
	if mock.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
		Params domain.CardUpdateParams
	}{Ctx: ctx, CardID: cardID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, cardID, params)
}

func (mock *cardRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
	Params domain.CardUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
