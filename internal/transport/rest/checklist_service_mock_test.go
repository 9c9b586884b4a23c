package rest

import (
	"context"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/service/checklist"
	"sync"
)

var _ checklistService = &checklistServiceMock{}

type checklistServiceMock struct {
	AddChecklistFunc    func(ctx context.Context, input checklist.AddChecklistInput) (*domain.Checklist, error)
	AddItemFunc         func(ctx context.Context, input checklist.AddItemInput) (*domain.ChecklistItem, error)
	DeleteChecklistFunc func(ctx context.Context, input checklist.ChecklistIDInput) error
	ToggleItemFunc      func(ctx context.Context, input checklist.ItemIDInput) (*checklist.ToggleResult, error)

	calls struct {
		AddChecklist []struct {
			Ctx   context.Context
			Input checklist.AddChecklistInput
		}
		AddItem []struct {
			Ctx   context.Context
			Input checklist.AddItemInput
		}
		DeleteChecklist []struct {
			Ctx   context.Context
			Input checklist.ChecklistIDInput
		}
		ToggleItem []struct {
			Ctx   context.Context
			Input checklist.ItemIDInput
		}
	}
	lockAddChecklist sync.RWMutex
	lockAddItem sync.RWMutex
	lockDeleteChecklist sync.RWMutex
	lockToggleItem sync.RWMutex
}

func (mock *checklistServiceMock) AddChecklist(ctx context.Context, input checklist.AddChecklistInput) (*domain.Checklist, error) {
	if mock.AddChecklistFunc == nil {
		panic("checklistServiceMock.AddChecklistFunc: method is nil but checklistService.AddChecklist was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input checklist.AddChecklistInput
	}{Ctx: ctx, Input: input}
	mock.lockAddChecklist.Lock()
	mock.calls.AddChecklist = append(mock.calls.AddChecklist, callInfo)
	mock.lockAddChecklist.Unlock()
	return mock.AddChecklistFunc(ctx, input)
}

func (mock *checklistServiceMock) AddChecklistCalls() []struct {
	Ctx   context.Context
	Input checklist.AddChecklistInput
} {
	mock.lockAddChecklist.RLock()
	calls := mock.calls.AddChecklist
	mock.lockAddChecklist.RUnlock()
	return calls
}

func (mock *checklistServiceMock) AddItem(ctx context.Context, input checklist.AddItemInput) (*domain.ChecklistItem, error) {
	if mock.AddItemFunc == nil {
		panic("checklistServiceMock.AddItemFunc: method is nil but checklistService.AddItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input checklist.AddItemInput
	}{Ctx: ctx, Input: input}
	mock.lockAddItem.Lock()
	mock.calls.AddItem = append(mock.calls.AddItem, callInfo)
	mock.lockAddItem.Unlock()
	return mock.AddItemFunc(ctx, input)
}

func (mock *checklistServiceMock) AddItemCalls() []struct {
	Ctx   context.Context
	Input checklist.AddItemInput
} {
	mock.lockAddItem.RLock()
	calls := mock.calls.AddItem
	mock.lockAddItem.RUnlock()
	return calls
}

func (mock *checklistServiceMock) DeleteChecklist(ctx context.Context, input checklist.ChecklistIDInput) error {
	if mock.DeleteChecklistFunc == nil {
		panic("checklistServiceMock.DeleteChecklistFunc: method is nil but checklistService.DeleteChecklist was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input checklist.ChecklistIDInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteChecklist.Lock()
	mock.calls.DeleteChecklist = append(mock.calls.DeleteChecklist, callInfo)
	mock.lockDeleteChecklist.Unlock()
	return mock.DeleteChecklistFunc(ctx, input)
}

func (mock *checklistServiceMock) DeleteChecklistCalls() []struct {
	Ctx   context.Context
	Input checklist.ChecklistIDInput
} {
	mock.lockDeleteChecklist.RLock()
	calls := mock.calls.DeleteChecklist
	mock.lockDeleteChecklist.RUnlock()
	return calls
}

func (mock *checklistServiceMock) ToggleItem(ctx context.Context, input checklist.ItemIDInput) (*checklist.ToggleResult, error) {
	if mock.ToggleItemFunc == nil {
		panic("checklistServiceMock.ToggleItemFunc: method is nil but checklistService.ToggleItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input checklist.ItemIDInput
	}{Ctx: ctx, Input: input}
	mock.lockToggleItem.Lock()
	mock.calls.ToggleItem = append(mock.calls.ToggleItem, callInfo)
	mock.lockToggleItem.Unlock()
	return mock.ToggleItemFunc(ctx, input)
}

func (mock *checklistServiceMock) ToggleItemCalls() []struct {
	Ctx   context.Context
	Input checklist.ItemIDInput
} {
	mock.lockToggleItem.RLock()
	calls := mock.calls.ToggleItem
	mock.lockToggleItem.RUnlock()
	return calls
}
