package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/position"
)

type boardRepo interface {
	GetAccess(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardAccess, error)
	ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.BoardMember, error)
}

type listRepo interface {
	Lock(ctx context.Context, listID uuid.UUID) (*domain.List, error)
}

type cardRepo interface {
	GetByID(ctx context.Context, cardID uuid.UUID) (*domain.CardLocation, error)
	Lock(ctx context.Context, cardID uuid.UUID) (*domain.CardLocation, error)
	MaxPosition(ctx context.Context, listID uuid.UUID) (*int64, error)
	Siblings(ctx context.Context, listID, excludeID uuid.UUID) ([]domain.Sibling, error)
	Labels(ctx context.Context, cardID uuid.UUID) ([]domain.Label, error)
	MemberIDs(ctx context.Context, cardID uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	Update(ctx context.Context, cardID uuid.UUID, params domain.CardUpdateParams) (*domain.Card, error)
	SetArchived(ctx context.Context, cardID uuid.UUID, archived bool) (*domain.Card, error)
	Reposition(ctx context.Context, listID, movedID uuid.UUID, ids []uuid.UUID, positions []int64) error
	Delete(ctx context.Context, cardID uuid.UUID) error
	ReplaceLabels(ctx context.Context, cardID uuid.UUID, labelIDs []uuid.UUID) error
	ReplaceMembers(ctx context.Context, cardID uuid.UUID, userIDs []uuid.UUID) error
}

type labelRepo interface {
	CountInBoard(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) (int, error)
}

type commentRepo interface {
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error)
}

type checklistRepo interface {
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error)
}

type activityLogger interface {
	Log(ctx context.Context, activity domain.Activity) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements card operations: lifecycle, moves, labels and assignees.
type Service struct {
	boards     boardRepo
	lists      listRepo
	cards      cardRepo
	labels     labelRepo
	comments   commentRepo
	checklists checklistRepo
	activity   activityLogger
	tx         txManager
	step       int64
	log        *slog.Logger
}

// NewService creates a new Card service.
func NewService(
	log *slog.Logger,
	boards boardRepo,
	lists listRepo,
	cards cardRepo,
	labels labelRepo,
	comments commentRepo,
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
		lists:      lists,
		cards:      cards,
		labels:     labels,
		comments:   comments,
		checklists: checklists,
		activity:   activity,
		tx:         tx,
		step:       step,
		log:        log.With("service", "card"),
	}
}

func (s *Service) requireEdit(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardAccess, error) {
	access, err := s.boards.GetAccess(ctx, boardID, userID)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	if err := access.RequireEdit(); err != nil {
		return nil, err
	}
	return access, nil
}

func (s *Service) logActivity(ctx context.Context, boardID, userID, cardID uuid.UUID, action domain.ActivityAction, details map[string]any) error {
	if err := s.activity.Log(ctx, domain.Activity{
		BoardID:    boardID,
		UserID:     userID,
		Action:     action,
		TargetType: domain.TargetCard,
		TargetID:   cardID,
		Details:    details,
	}); err != nil {
		return fmt.Errorf("activity log: %w", err)
	}
	return nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
