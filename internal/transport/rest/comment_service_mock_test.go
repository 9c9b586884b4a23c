package rest

import (
	"context"
	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/service/comment"
	"sync"
)

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	AddCommentFunc    func(ctx context.Context, input comment.AddCommentInput) (*domain.Comment, error)
	DeleteCommentFunc func(ctx context.Context, input comment.DeleteCommentInput) error
	EditCommentFunc   func(ctx context.Context, input comment.EditCommentInput) (*domain.Comment, error)

	calls struct {
		AddComment []struct {
			Ctx   context.Context
			Input comment.AddCommentInput
		}
		DeleteComment []struct {
			Ctx   context.Context
			Input comment.DeleteCommentInput
		}
		EditComment []struct {
			Ctx   context.Context
			Input comment.EditCommentInput
		}
	}
	lockAddComment sync.RWMutex
	lockDeleteComment sync.RWMutex
	lockEditComment sync.RWMutex
}

func (mock *commentServiceMock) AddComment(ctx context.Context, input comment.AddCommentInput) (*domain.Comment, error) {
	if mock.AddCommentFunc == nil {
		panic("commentServiceMock.AddCommentFunc: method is nil but commentService.AddComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.AddCommentInput
	}{Ctx: ctx, Input: input}
	mock.lockAddComment.Lock()
	mock.calls.AddComment = append(mock.calls.AddComment, callInfo)
	mock.lockAddComment.Unlock()
	return mock.AddCommentFunc(ctx, input)
}

func (mock *commentServiceMock) AddCommentCalls() []struct {
	Ctx   context.Context
	Input comment.AddCommentInput
} {
	mock.lockAddComment.RLock()
	calls := mock.calls.AddComment
	mock.lockAddComment.RUnlock()
	return calls
}

func (mock *commentServiceMock) DeleteComment(ctx context.Context, input comment.DeleteCommentInput) error {
	if mock.DeleteCommentFunc == nil {
		panic("commentServiceMock.DeleteCommentFunc: method is nil but commentService.DeleteComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.DeleteCommentInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteComment.Lock()
	mock.calls.DeleteComment = append(mock.calls.DeleteComment, callInfo)
	mock.lockDeleteComment.Unlock()
	return mock.DeleteCommentFunc(ctx, input)
}

func (mock *commentServiceMock) DeleteCommentCalls() []struct {
	Ctx   context.Context
	Input comment.DeleteCommentInput
} {
	mock.lockDeleteComment.RLock()
	calls := mock.calls.DeleteComment
	mock.lockDeleteComment.RUnlock()
	return calls
}

func (mock *commentServiceMock) EditComment(ctx context.Context, input comment.EditCommentInput) (*domain.Comment, error) {
	if mock.EditCommentFunc == nil {
		panic("commentServiceMock.EditCommentFunc: method is nil but commentService.EditComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.EditCommentInput
	}{Ctx: ctx, Input: input}
	mock.lockEditComment.Lock()
	mock.calls.EditComment = append(mock.calls.EditComment, callInfo)
	mock.lockEditComment.Unlock()
	return mock.EditCommentFunc(ctx, input)
}

func (mock *commentServiceMock) EditCommentCalls() []struct {
	Ctx   context.Context
	Input comment.EditCommentInput
} {
	mock.lockEditComment.RLock()
	calls := mock.calls.EditComment
	mock.lockEditComment.RUnlock()
	return calls
}
