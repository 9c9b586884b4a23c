// Package dataloader batches the per-card decorations of a board view
// (labels, assignees, checklist progress) into one query per kind. Loaders
// live for a single request and skip access checks, so handlers load only
// cards of a board the actor was already allowed to read.
package dataloader

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/boards-backend/internal/adapter/postgres/card"
	"github.com/heartmarshall/boards-backend/internal/adapter/postgres/checklist"
	"github.com/heartmarshall/boards-backend/internal/domain"
)

type cardRepo interface {
	LabelsByCardIDs(ctx context.Context, cardIDs []uuid.UUID) ([]card.LabelWithCardID, error)
	MemberIDsByCardIDs(ctx context.Context, cardIDs []uuid.UUID) ([]card.MemberWithCardID, error)
}

type checklistRepo interface {
	ProgressByCardIDs(ctx context.Context, cardIDs []uuid.UUID) ([]checklist.ProgressWithCardID, error)
}

type Repos struct {
	Card      cardRepo
	Checklist checklistRepo
}

// Loaders is the per-request set. Issue every Load before calling any of the
// returned thunks, otherwise each call becomes its own batch.
type Loaders struct {
	LabelsByCardID    *dataloader.Loader[uuid.UUID, []domain.Label]
	MemberIDsByCardID *dataloader.Loader[uuid.UUID, []uuid.UUID]
	ProgressByCardID  *dataloader.Loader[uuid.UUID, domain.ChecklistProgress]
}

func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		LabelsByCardID: newLoader(groupBy(repos.Card.LabelsByCardIDs,
			func(r card.LabelWithCardID) uuid.UUID { return r.CardID },
			appendTo(func(r card.LabelWithCardID) domain.Label { return r.Label }),
			emptySlice[domain.Label],
		)),
		MemberIDsByCardID: newLoader(groupBy(repos.Card.MemberIDsByCardIDs,
			func(r card.MemberWithCardID) uuid.UUID { return r.CardID },
			appendTo(func(r card.MemberWithCardID) uuid.UUID { return r.UserID }),
			emptySlice[uuid.UUID],
		)),
		ProgressByCardID: newLoader(groupBy(repos.Checklist.ProgressByCardIDs,
			func(r checklist.ProgressWithCardID) uuid.UUID { return r.CardID },
			func(_ domain.ChecklistProgress, r checklist.ProgressWithCardID) domain.ChecklistProgress {
				return r.ChecklistProgress
			},
			func() domain.ChecklistProgress { return domain.ChecklistProgress{} },
		)),
	}
}

type loadersKey struct{}

func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey{}, l)
}

// FromContext returns nil when no loaders were installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey{}).(*Loaders)
	return l
}

// Middleware installs a fresh Loaders on every request.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLoaders(r.Context(), NewLoaders(repos))))
		})
	}
}
