package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/service/card"
	"sync"
)

var _ cardService = &cardServiceMock{}

type cardServiceMock struct {
	ArchiveCardFunc   func(ctx context.Context, input card.CardIDInput) (*domain.Card, error)
	CreateCardFunc    func(ctx context.Context, input card.CreateCardInput) (*domain.Card, error)
	DeleteCardFunc    func(ctx context.Context, input card.CardIDInput) error
	GetCardFunc       func(ctx context.Context, input card.CardIDInput) (*domain.CardDetail, error)
	MoveCardFunc      func(ctx context.Context, input card.MoveCardInput) (*domain.Card, error)
	SetLabelsFunc     func(ctx context.Context, input card.SetLabelsInput) ([]uuid.UUID, error)
	SetMembersFunc    func(ctx context.Context, input card.SetMembersInput) ([]uuid.UUID, error)
	UnarchiveCardFunc func(ctx context.Context, input card.CardIDInput) (*domain.Card, error)
	UpdateCardFunc    func(ctx context.Context, input card.UpdateCardInput) (*domain.Card, error)

	calls struct {
		ArchiveCard []struct {
			Ctx   context.Context
			Input card.CardIDInput
		}
		CreateCard []struct {
			Ctx   context.Context
			Input card.CreateCardInput
		}
		DeleteCard []struct {
			Ctx   context.Context
			Input card.CardIDInput
		}
		GetCard []struct {
			Ctx   context.Context
			Input card.CardIDInput
		}
		MoveCard []struct {
			Ctx   context.Context
			Input card.MoveCardInput
		}
		SetLabels []struct {
			Ctx   context.Context
			Input card.SetLabelsInput
		}
		SetMembers []struct {
			Ctx   context.Context
			Input card.SetMembersInput
		}
		UnarchiveCard []struct {
			Ctx   context.Context
			Input card.CardIDInput
		}
		UpdateCard []struct {
			Ctx   context.Context
			Input card.UpdateCardInput
		}
	}
	lockArchiveCard sync.RWMutex
	lockCreateCard sync.RWMutex
	lockDeleteCard sync.RWMutex
	lockGetCard sync.RWMutex
	lockMoveCard sync.RWMutex
	lockSetLabels sync.RWMutex
	lockSetMembers sync.RWMutex
	lockUnarchiveCard sync.RWMutex
	lockUpdateCard sync.RWMutex
}

func (mock *cardServiceMock) ArchiveCard(ctx context.Context, input card.CardIDInput) (*domain.Card, error) {
	if mock.ArchiveCardFunc == nil {
		panic("cardServiceMock.ArchiveCardFunc: method is nil but cardService.ArchiveCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input card.CardIDInput
	}{Ctx: ctx, Input: input}
	mock.lockArchiveCard.Lock()
	mock.calls.ArchiveCard = append(mock.calls.ArchiveCard, callInfo)
	mock.lockArchiveCard.Unlock()
	return mock.ArchiveCardFunc(ctx, input)
}

func (mock *cardServiceMock) ArchiveCardCalls() []struct {
	Ctx   context.Context
	Input card.CardIDInput
} {
	mock.lockArchiveCard.RLock()
	calls := mock.calls.ArchiveCard
	mock.lockArchiveCard.RUnlock()
	return calls
}

func (mock *cardServiceMock) CreateCard(ctx context.Context, input card.CreateCardInput) (*domain.Card, error) {
	if mock.CreateCardFunc == nil {
		panic("cardServiceMock.CreateCardFunc: method is nil but cardService.CreateCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input card.CreateCardInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCard.Lock()
	mock.calls.CreateCard = append(mock.calls.CreateCard, callInfo)
	mock.lockCreateCard.Unlock()
	return mock.CreateCardFunc(ctx, input)
}

func (mock *cardServiceMock) CreateCardCalls() []struct {
	Ctx   context.Context
	Input card.CreateCardInput
} {
	mock.lockCreateCard.RLock()
	calls := mock.calls.CreateCard
	mock.lockCreateCard.RUnlock()
	return calls
}

func (mock *cardServiceMock) DeleteCard(ctx context.Context, input card.CardIDInput) error {
	if mock.DeleteCardFunc == nil {
		panic("cardServiceMock.DeleteCardFunc: method is nil but cardService.DeleteCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input card.CardIDInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteCard.Lock()
	mock.calls.DeleteCard = append(mock.calls.DeleteCard, callInfo)
	mock.lockDeleteCard.Unlock()
	return mock.DeleteCardFunc(ctx, input)
}

func (mock *cardServiceMock) DeleteCardCalls() []struct {
	Ctx   context.Context
	Input card.CardIDInput
} {
	mock.lockDeleteCard.RLock()
	calls := mock.calls.DeleteCard
	mock.lockDeleteCard.RUnlock()
	return calls
}

func (mock *cardServiceMock) GetCard(ctx context.Context, input card.CardIDInput) (*domain.CardDetail, error) {
	if mock.GetCardFunc == nil {
		panic("cardServiceMock.GetCardFunc: method is nil but cardService.GetCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input card.CardIDInput
	}{Ctx: ctx, Input: input}
	mock.lockGetCard.Lock()
	mock.calls.GetCard = append(mock.calls.GetCard, callInfo)
	mock.lockGetCard.Unlock()
	return mock.GetCardFunc(ctx, input)
}

func (mock *cardServiceMock) GetCardCalls() []struct {
	Ctx   context.Context
	Input card.CardIDInput
} {
	mock.lockGetCard.RLock()
	calls := mock.calls.GetCard
	mock.lockGetCard.RUnlock()
	return calls
}

func (mock *cardServiceMock) MoveCard(ctx context.Context, input card.MoveCardInput) (*domain.Card, error) {
	if mock.MoveCardFunc == nil {
		panic("cardServiceMock.MoveCardFunc: method is nil but cardService.MoveCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input card.MoveCardInput
	}{Ctx: ctx, Input: input}
	mock.lockMoveCard.Lock()
	mock.calls.MoveCard = append(mock.calls.MoveCard, callInfo)
	mock.lockMoveCard.Unlock()
	return mock.MoveCardFunc(ctx, input)
}

func (mock *cardServiceMock) MoveCardCalls() []struct {
	Ctx   context.Context
	Input card.MoveCardInput
} {
	mock.lockMoveCard.RLock()
	calls := mock.calls.MoveCard
	mock.lockMoveCard.RUnlock()
	return calls
}

func (mock *cardServiceMock) SetLabels(ctx context.Context, input card.SetLabelsInput) ([]uuid.UUID, error) {
	if mock.SetLabelsFunc == nil {
		panic("cardServiceMock.SetLabelsFunc: method is nil but cardService.SetLabels was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input card.SetLabelsInput
	}{Ctx: ctx, Input: input}
	mock.lockSetLabels.Lock()
	mock.calls.SetLabels = append(mock.calls.SetLabels, callInfo)
	mock.lockSetLabels.Unlock()
	return mock.SetLabelsFunc(ctx, input)
}

func (mock *cardServiceMock) SetLabelsCalls() []struct {
	Ctx   context.Context
	Input card.SetLabelsInput
} {
	mock.lockSetLabels.RLock()
	calls := mock.calls.SetLabels
	mock.lockSetLabels.RUnlock()
	return calls
}

func (mock *cardServiceMock) SetMembers(ctx context.Context, input card.SetMembersInput) ([]uuid.UUID, error) {
	if mock.SetMembersFunc == nil {
		panic("cardServiceMock.SetMembersFunc: method is nil but cardService.SetMembers was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input card.SetMembersInput
	}{Ctx: ctx, Input: input}
	mock.lockSetMembers.Lock()
	mock.calls.SetMembers = append(mock.calls.SetMembers, callInfo)
	mock.lockSetMembers.Unlock()
	return mock.SetMembersFunc(ctx, input)
}

func (mock *cardServiceMock) SetMembersCalls() []struct {
	Ctx   context.Context
	Input card.SetMembersInput
} {
	mock.lockSetMembers.RLock()
	calls := mock.calls.SetMembers
	mock.lockSetMembers.RUnlock()
	return calls
}

func (mock *cardServiceMock) UnarchiveCard(ctx context.Context, input card.CardIDInput) (*domain.Card, error) {
	if mock.UnarchiveCardFunc == nil {
		panic("cardServiceMock.UnarchiveCardFunc: method is nil but cardService.UnarchiveCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input card.CardIDInput
	}{Ctx: ctx, Input: input}
	mock.lockUnarchiveCard.Lock()
	mock.calls.UnarchiveCard = append(mock.calls.UnarchiveCard, callInfo)
	mock.lockUnarchiveCard.Unlock()
	return mock.UnarchiveCardFunc(ctx, input)
}

func (mock *cardServiceMock) UnarchiveCardCalls() []struct {
	Ctx   context.Context
	Input card.CardIDInput
} {
	mock.lockUnarchiveCard.RLock()
	calls := mock.calls.UnarchiveCard
	mock.lockUnarchiveCard.RUnlock()
	return calls
}

func (mock *cardServiceMock) UpdateCard(ctx context.Context, input card.UpdateCardInput) (*domain.Card, error) {
	if mock.UpdateCardFunc == nil {
		panic("cardServiceMock.UpdateCardFunc: method is nil but cardService.UpdateCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input card.UpdateCardInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateCard.Lock()
	mock.calls.UpdateCard = append(mock.calls.UpdateCard, callInfo)
	mock.lockUpdateCard.Unlock()
	return mock.UpdateCardFunc(ctx, input)
}

func (mock *cardServiceMock) UpdateCardCalls() []struct {
	Ctx   context.Context
	Input card.UpdateCardInput
} {
	mock.lockUpdateCard.RLock()
	calls := mock.calls.UpdateCard
	mock.lockUpdateCard.RUnlock()
	return calls
}
