package rest

import (
	"context"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/service/label"
	"sync"
)

var _ labelService = &labelServiceMock{}

type labelServiceMock struct {
	CreateLabelFunc func(ctx context.Context, input label.CreateLabelInput) (*domain.Label, error)
	DeleteLabelFunc func(ctx context.Context, input label.DeleteLabelInput) error
	ListLabelsFunc  func(ctx context.Context, input label.ListLabelsInput) ([]domain.Label, error)
	UpdateLabelFunc func(ctx context.Context, input label.UpdateLabelInput) (*domain.Label, error)

	calls struct {
		CreateLabel []struct {
			Ctx   context.Context
			Input label.CreateLabelInput
		}
		DeleteLabel []struct {
			Ctx   context.Context
			Input label.DeleteLabelInput
		}
		ListLabels []struct {
			Ctx   context.Context
			Input label.ListLabelsInput
		}
		UpdateLabel []struct {
			Ctx   context.Context
			Input label.UpdateLabelInput
		}
	}
	lockCreateLabel sync.RWMutex
	lockDeleteLabel sync.RWMutex
	lockListLabels sync.RWMutex
	lockUpdateLabel sync.RWMutex
}

func (mock *labelServiceMock) CreateLabel(ctx context.Context, input label.CreateLabelInput) (*domain.Label, error) {
	if mock.CreateLabelFunc == nil {
		panic("labelServiceMock.CreateLabelFunc: method is nil but labelService.CreateLabel was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input label.CreateLabelInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateLabel.Lock()
	mock.calls.CreateLabel = append(mock.calls.CreateLabel, callInfo)
	mock.lockCreateLabel.Unlock()
	return mock.CreateLabelFunc(ctx, input)
}

func (mock *labelServiceMock) CreateLabelCalls() []struct {
	Ctx   context.Context
	Input label.CreateLabelInput
} {
	mock.lockCreateLabel.RLock()
	calls := mock.calls.CreateLabel
	mock.lockCreateLabel.RUnlock()
	return calls
}

func (mock *labelServiceMock) DeleteLabel(ctx context.Context, input label.DeleteLabelInput) error {
	if mock.DeleteLabelFunc == nil {
		panic("labelServiceMock.DeleteLabelFunc: method is nil but labelService.DeleteLabel was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input label.DeleteLabelInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteLabel.Lock()
	mock.calls.DeleteLabel = append(mock.calls.DeleteLabel, callInfo)
	mock.lockDeleteLabel.Unlock()
	return mock.DeleteLabelFunc(ctx, input)
}

func (mock *labelServiceMock) DeleteLabelCalls() []struct {
	Ctx   context.Context
	Input label.DeleteLabelInput
} {
	mock.lockDeleteLabel.RLock()
	calls := mock.calls.DeleteLabel
	mock.lockDeleteLabel.RUnlock()
	return calls
}

func (mock *labelServiceMock) ListLabels(ctx context.Context, input label.ListLabelsInput) ([]domain.Label, error) {
	if mock.ListLabelsFunc == nil {
		panic("labelServiceMock.ListLabelsFunc: method is nil but labelService.ListLabels was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input label.ListLabelsInput
	}{Ctx: ctx, Input: input}
	mock.lockListLabels.Lock()
	mock.calls.ListLabels = append(mock.calls.ListLabels, callInfo)
	mock.lockListLabels.Unlock()
	return mock.ListLabelsFunc(ctx, input)
}

func (mock *labelServiceMock) ListLabelsCalls() []struct {
	Ctx   context.Context
	Input label.ListLabelsInput
} {
	mock.lockListLabels.RLock()
	calls := mock.calls.ListLabels
	mock.lockListLabels.RUnlock()
	return calls
}

func (mock *labelServiceMock) UpdateLabel(ctx context.Context, input label.UpdateLabelInput) (*domain.Label, error) {
	if mock.UpdateLabelFunc == nil {
		panic("labelServiceMock.UpdateLabelFunc: method is nil but labelService.UpdateLabel was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input label.UpdateLabelInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateLabel.Lock()
	mock.calls.UpdateLabel = append(mock.calls.UpdateLabel, callInfo)
	mock.lockUpdateLabel.Unlock()
	return mock.UpdateLabelFunc(ctx, input)
}

func (mock *labelServiceMock) UpdateLabelCalls() []struct {
	Ctx   context.Context
	Input label.UpdateLabelInput
} {
	mock.lockUpdateLabel.RLock()
	calls := mock.calls.UpdateLabel
	mock.lockUpdateLabel.RUnlock()
	return calls
}
