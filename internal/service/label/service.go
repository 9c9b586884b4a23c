package label

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

type boardRepo interface {
	GetAccess(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardAccess, error)
}

type labelRepo interface {
	GetByID(ctx context.Context, labelID uuid.UUID) (*domain.Label, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error)
	Create(ctx context.Context, label *domain.Label) (*domain.Label, error)
	Update(ctx context.Context, labelID uuid.UUID, params domain.LabelUpdateParams) (*domain.Label, error)
	Delete(ctx context.Context, labelID uuid.UUID) error
}

type activityLogger interface {
	Log(ctx context.Context, activity domain.Activity) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages board labels.
type Service struct {
	boards   boardRepo
	labels   labelRepo
	activity activityLogger
	tx       txManager
	log      *slog.Logger
}

func NewService(log *slog.Logger, boards boardRepo, labels labelRepo, activity activityLogger, tx txManager) *Service {
	return &Service{
		boards:   boards,
		labels:   labels,
		activity: activity,
		tx:       tx,
		log:      log.With("service", "label"),
	}
}
