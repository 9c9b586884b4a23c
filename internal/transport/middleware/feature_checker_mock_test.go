package middleware

import (
	"context"
	"sync"
)

var _ featureChecker = &featureCheckerMock{}

type featureCheckerMock struct {
	IsEnabledFunc func(ctx context.Context, feature string) (bool, error)

	calls struct {
		IsEnabled []struct {
			Ctx     context.Context
			Feature string
		}
	}
	lockIsEnabled sync.RWMutex
}

func (mock *featureCheckerMock) IsEnabled(ctx context.Context, feature string) (bool, error) {
	if mock.IsEnabledFunc == nil {
		panic("featureCheckerMock.IsEnabledFunc: method is nil but featureChecker.IsEnabled was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Feature string
	}{Ctx: ctx, Feature: feature}
	mock.lockIsEnabled.Lock()
	mock.calls.IsEnabled = append(mock.calls.IsEnabled, callInfo)
	mock.lockIsEnabled.Unlock()
	return mock.IsEnabledFunc(ctx, feature)
}

func (mock *featureCheckerMock) IsEnabledCalls() []struct {
	Ctx     context.Context
	Feature string
} {
	mock.lockIsEnabled.RLock()
	calls := mock.calls.IsEnabled
	mock.lockIsEnabled.RUnlock()
	return calls
}
