package checklist

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"sync"
)

var _ checklistRepo = &checklistRepoMock{}

type checklistRepoMock struct {
	CreateFunc          func(ctx context.Context, cl *domain.Checklist) (*domain.Checklist, error)
	CreateItemFunc      func(ctx context.Context, item *domain.ChecklistItem) (*domain.ChecklistItem, error)
	DeleteFunc          func(ctx context.Context, checklistID uuid.UUID) error
	GetWithBoardFunc    func(ctx context.Context, checklistID uuid.UUID) (*domain.Checklist, uuid.UUID, error)
	ListByCardFunc      func(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error)
	LockFunc            func(ctx context.Context, checklistID uuid.UUID) (*domain.Checklist, uuid.UUID, error)
	LockItemFunc        func(ctx context.Context, itemID uuid.UUID) (*domain.ChecklistItem, uuid.UUID, error)
	MaxItemPositionFunc func(ctx context.Context, checklistID uuid.UUID) (*int64, error)
	MaxPositionFunc     func(ctx context.Context, cardID uuid.UUID) (*int64, error)
	SaveCompletionFunc  func(ctx context.Context, item domain.ChecklistItem) (*domain.ChecklistItem, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Cl  *domain.Checklist
		}
		CreateItem []struct {
			Ctx  context.Context
			Item *domain.ChecklistItem
		}
		Delete []struct {
			Ctx         context.Context
			ChecklistID uuid.UUID
		}
		GetWithBoard []struct {
			Ctx         context.Context
			ChecklistID uuid.UUID
		}
		ListByCard []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		Lock []struct {
			Ctx         context.Context
			ChecklistID uuid.UUID
		}
		LockItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		MaxItemPosition []struct {
			Ctx         context.Context
			ChecklistID uuid.UUID
		}
		MaxPosition []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		SaveCompletion []struct {
			Ctx  context.Context
			Item domain.ChecklistItem
		}
	}
	lockCreate sync.RWMutex
	lockCreateItem sync.RWMutex
	lockDelete sync.RWMutex
	lockGetWithBoard sync.RWMutex
	lockListByCard sync.RWMutex
	lockLock sync.RWMutex
	lockLockItem sync.RWMutex
	lockMaxItemPosition sync.RWMutex
	lockMaxPosition sync.RWMutex
	lockSaveCompletion sync.RWMutex
}

func (mock *checklistRepoMock) Create(ctx context.Context, cl *domain.Checklist) (*domain.Checklist, error) {
	if mock.CreateFunc == nil {
		panic("checklistRepoMock.CreateFunc: method is nil but checklistRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Cl  *domain.Checklist
	}{Ctx: ctx, Cl: cl}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, cl)
}

func (mock *checklistRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Cl  *domain.Checklist
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *checklistRepoMock) CreateItem(ctx context.Context, item *domain.ChecklistItem) (*domain.ChecklistItem, error) {
	if mock.CreateItemFunc == nil {
		panic("checklistRepoMock.CreateItemFunc: method is nil but checklistRepo.CreateItem was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.ChecklistItem
	}{Ctx: ctx, Item: item}
	mock.lockCreateItem.Lock()
	mock.calls.CreateItem = append(mock.calls.CreateItem, callInfo)
	mock.lockCreateItem.Unlock()
	return mock.CreateItemFunc(ctx, item)
}

func (mock *checklistRepoMock) CreateItemCalls() []struct {
	Ctx  context.Context
	Item *domain.ChecklistItem
} {
	mock.lockCreateItem.RLock()
	calls := mock.calls.CreateItem
	mock.lockCreateItem.RUnlock()
	return calls
}

func (mock *checklistRepoMock) Delete(ctx context.Context, checklistID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("checklistRepoMock.DeleteFunc: method is nil but checklistRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ChecklistID uuid.UUID
	}{Ctx: ctx, ChecklistID: checklistID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, checklistID)
}

func (mock *checklistRepoMock) DeleteCalls() []struct {
	Ctx         context.Context
	ChecklistID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *checklistRepoMock) GetWithBoard(ctx context.Context, checklistID uuid.UUID) (*domain.Checklist, uuid.UUID, error) {
	if mock.GetWithBoardFunc == nil {
		panic("checklistRepoMock.GetWithBoardFunc: method is nil but checklistRepo.GetWithBoard was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ChecklistID uuid.UUID
	}{Ctx: ctx, ChecklistID: checklistID}
	mock.lockGetWithBoard.Lock()
	mock.calls.GetWithBoard = append(mock.calls.GetWithBoard, callInfo)
	mock.lockGetWithBoard.Unlock()
	return mock.GetWithBoardFunc(ctx, checklistID)
}

func (mock *checklistRepoMock) GetWithBoardCalls() []struct {
	Ctx         context.Context
	ChecklistID uuid.UUID
} {
	mock.lockGetWithBoard.RLock()
	calls := mock.calls.GetWithBoard
	mock.lockGetWithBoard.RUnlock()
	return calls
}

func (mock *checklistRepoMock) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error) {
	if mock.ListByCardFunc == nil {
		panic("checklistRepoMock.ListByCardFunc: method is nil but checklistRepo.ListByCard was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockListByCard.Lock()
	mock.calls.ListByCard = append(mock.calls.ListByCard, callInfo)
	mock.lockListByCard.Unlock()
	return mock.ListByCardFunc(ctx, cardID)
}

func (mock *checklistRepoMock) ListByCardCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockListByCard.RLock()
	calls := mock.calls.ListByCard
	mock.lockListByCard.RUnlock()
	return calls
}

func (mock *checklistRepoMock) Lock(ctx context.Context, checklistID uuid.UUID) (*domain.Checklist, uuid.UUID, error) {
	if mock.LockFunc == nil {
		panic("checklistRepoMock.LockFunc: method is nil but checklistRepo.Lock was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ChecklistID uuid.UUID
	}{Ctx: ctx, ChecklistID: checklistID}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	return mock.LockFunc(ctx, checklistID)
}

func (mock *checklistRepoMock) LockCalls() []struct {
	Ctx         context.Context
	ChecklistID uuid.UUID
} {
	mock.lockLock.RLock()
	calls := mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}

func (mock *checklistRepoMock) LockItem(ctx context.Context, itemID uuid.UUID) (*domain.ChecklistItem, uuid.UUID, error) {
	if mock.LockItemFunc == nil {
		panic("checklistRepoMock.LockItemFunc: method is nil but checklistRepo.LockItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockLockItem.Lock()
	mock.calls.LockItem = append(mock.calls.LockItem, callInfo)
	mock.lockLockItem.Unlock()
	return mock.LockItemFunc(ctx, itemID)
}

func (mock *checklistRepoMock) LockItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockLockItem.RLock()
	calls := mock.calls.LockItem
	mock.lockLockItem.RUnlock()
	return calls
}

func (mock *checklistRepoMock) MaxItemPosition(ctx context.Context, checklistID uuid.UUID) (*int64, error) {
	if mock.MaxItemPositionFunc == nil {
		panic("checklistRepoMock.MaxItemPositionFunc: method is nil but checklistRepo.MaxItemPosition was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ChecklistID uuid.UUID
	}{Ctx: ctx, ChecklistID: checklistID}
	mock.lockMaxItemPosition.Lock()
	mock.calls.MaxItemPosition = append(mock.calls.MaxItemPosition, callInfo)
	mock.lockMaxItemPosition.Unlock()
	return mock.MaxItemPositionFunc(ctx, checklistID)
}

func (mock *checklistRepoMock) MaxItemPositionCalls() []struct {
	Ctx         context.Context
	ChecklistID uuid.UUID
} {
	mock.lockMaxItemPosition.RLock()
	calls := mock.calls.MaxItemPosition
	mock.lockMaxItemPosition.RUnlock()
	return calls
}

func (mock *checklistRepoMock) MaxPosition(ctx context.Context, cardID uuid.UUID) (*int64, error) {
	if mock.MaxPositionFunc == nil {
		panic("checklistRepoMock.MaxPositionFunc: method is nil but checklistRepo.MaxPosition was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockMaxPosition.Lock()
	mock.calls.MaxPosition = append(mock.calls.MaxPosition, callInfo)
	mock.lockMaxPosition.Unlock()
	return mock.MaxPositionFunc(ctx, cardID)
}

func (mock *checklistRepoMock) MaxPositionCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockMaxPosition.RLock()
	calls := mock.calls.MaxPosition
	mock.lockMaxPosition.RUnlock()
	return calls
}

func (mock *checklistRepoMock) SaveCompletion(ctx context.Context, item domain.ChecklistItem) (*domain.ChecklistItem, error) {
	if mock.SaveCompletionFunc == nil {
		panic("checklistRepoMock.SaveCompletionFunc: method is nil but checklistRepo.SaveCompletion was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.ChecklistItem
	}{Ctx: ctx, Item: item}
	mock.lockSaveCompletion.Lock()
	mock.calls.SaveCompletion = append(mock.calls.SaveCompletion, callInfo)
	mock.lockSaveCompletion.Unlock()
	return mock.SaveCompletionFunc(ctx, item)
}

func (mock *checklistRepoMock) SaveCompletionCalls() []struct {
	Ctx  context.Context
	Item domain.ChecklistItem
} {
	mock.lockSaveCompletion.RLock()
	calls := mock.calls.SaveCompletion
	mock.lockSaveCompletion.RUnlock()
	return calls
}
