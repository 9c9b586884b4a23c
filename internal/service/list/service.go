package list

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/position"
)

type boardRepo interface {
	GetAccess(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardAccess, error)
	Lock(ctx context.Context, boardID uuid.UUID) error
}

type listRepo interface {
	GetByID(ctx context.Context, listID uuid.UUID) (*domain.List, error)
	MaxPosition(ctx context.Context, boardID uuid.UUID) (*int64, error)
	Siblings(ctx context.Context, boardID, excludeID uuid.UUID) ([]domain.Sibling, error)
	Create(ctx context.Context, list *domain.List) (*domain.List, error)
	Rename(ctx context.Context, listID uuid.UUID, name string) (*domain.List, error)
	SetArchived(ctx context.Context, listID uuid.UUID, archived bool) (*domain.List, error)
	Reposition(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID, positions []int64) error
}

type activityLogger interface {
	Log(ctx context.Context, activity domain.Activity) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the lists of a board.
type Service struct {
	boards   boardRepo
	lists    listRepo
	activity activityLogger
	tx       txManager
	step     int64
	log      *slog.Logger
}

// NewService creates a new List service. step is the position gap; values
// below 2 fall back to position.DefaultStep.
func NewService(
	log *slog.Logger,
	boards boardRepo,
	lists listRepo,
	activity activityLogger,
	tx txManager,
	step int64,
) *Service {
	if step < 2 {
		step = position.DefaultStep
	}
	return &Service{
		boards:   boards,
		lists:    lists,
		activity: activity,
		tx:       tx,
		step:     step,
		log:      log.With("service", "list"),
	}
}

// requireEdit loads the board access for userID and checks edit rights.
func (s *Service) requireEdit(ctx context.Context, boardID, userID uuid.UUID) error {
	access, err := s.boards.GetAccess(ctx, boardID, userID)
	if err != nil {
		return err
	}
	return access.RequireEdit()
}
