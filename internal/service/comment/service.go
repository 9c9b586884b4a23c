package comment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

type boardRepo interface {
	GetAccess(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardAccess, error)
}

type cardRepo interface {
	GetByID(ctx context.Context, cardID uuid.UUID) (*domain.CardLocation, error)
	Touch(ctx context.Context, cardID uuid.UUID) error
}

type commentRepo interface {
	GetWithBoard(ctx context.Context, commentID uuid.UUID) (*domain.Comment, uuid.UUID, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	UpdateContent(ctx context.Context, commentID uuid.UUID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, commentID uuid.UUID) error
}

type activityLogger interface {
	Log(ctx context.Context, activity domain.Activity) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages card comments.
type Service struct {
	boards   boardRepo
	cards    cardRepo
	comments commentRepo
	activity activityLogger
	tx       txManager
	log      *slog.Logger
}

func NewService(
	log *slog.Logger,
	boards boardRepo,
	cards cardRepo,
	comments commentRepo,
	activity activityLogger,
	tx txManager,
) *Service {
	return &Service{
		boards:   boards,
		cards:    cards,
		comments: comments,
		activity: activity,
		tx:       tx,
		log:      log.With("service", "comment"),
	}
}
