package checklist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/position"
)

type boardRepo interface {
	GetAccess(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardAccess, error)
}

type cardRepo interface {
	Lock(ctx context.Context, cardID uuid.UUID) (*domain.CardLocation, error)
}

type checklistRepo interface {
	GetWithBoard(ctx context.Context, checklistID uuid.UUID) (*domain.Checklist, uuid.UUID, error)
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error)
	MaxPosition(ctx context.Context, cardID uuid.UUID) (*int64, error)
	MaxItemPosition(ctx context.Context, checklistID uuid.UUID) (*int64, error)
	Lock(ctx context.Context, checklistID uuid.UUID) (*domain.Checklist, uuid.UUID, error)
	Create(ctx context.Context, cl *domain.Checklist) (*domain.Checklist, error)
	Delete(ctx context.Context, checklistID uuid.UUID) error
	CreateItem(ctx context.Context, item *domain.ChecklistItem) (*domain.ChecklistItem, error)
	LockItem(ctx context.Context, itemID uuid.UUID) (*domain.ChecklistItem, uuid.UUID, error)
	SaveCompletion(ctx context.Context, item domain.ChecklistItem) (*domain.ChecklistItem, error)
}

type activityLogger interface {
	Log(ctx context.Context, activity domain.Activity) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages checklists and their items.
type Service struct {
	boards     boardRepo
	cards      cardRepo
	checklists checklistRepo
	activity   activityLogger
	tx         txManager
	step       int64
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new Checklist service.
func NewService(
	log *slog.Logger,
	boards boardRepo,
	cards cardRepo,
	checklists checklistRepo,
	activity activityLogger,
	tx txManager,
	step int64,
) *Service {
	if step < 2 {
		step = position.DefaultStep
	}
	return &Service{
		boards:     boards,
		cards:      cards,
		checklists: checklists,
		activity:   activity,
		tx:         tx,
		step:       step,
		now:        time.Now,
		log:        log.With("service", "checklist"),
	}
}

func (s *Service) requireEdit(ctx context.Context, boardID, userID uuid.UUID) error {
	access, err := s.boards.GetAccess(ctx, boardID, userID)
	if err != nil {
		return fmt.Errorf("get board: %w", err)
	}
	return access.RequireEdit()
}
