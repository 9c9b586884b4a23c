package board

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/position"
)

type boardRepo interface {
	GetAccess(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardAccess, error)
	ListVisible(ctx context.Context, filter domain.BoardFilter) ([]domain.Board, error)
	ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.BoardMember, error)
	Create(ctx context.Context, board *domain.Board) (*domain.Board, error)
	Update(ctx context.Context, boardID uuid.UUID, params domain.BoardUpdateParams) (*domain.Board, error)
	SetArchived(ctx context.Context, boardID uuid.UUID, archived bool) (*domain.Board, error)
	Delete(ctx context.Context, boardID uuid.UUID) error
	UpsertMember(ctx context.Context, member domain.BoardMember) (*domain.BoardMember, error)
	RemoveMember(ctx context.Context, boardID, userID uuid.UUID) error
}

type listRepo interface {
	Create(ctx context.Context, list *domain.List) (*domain.List, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.List, error)
}

type cardRepo interface {
	ListByBoard(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.Card, error)
}

type labelRepo interface {
	Create(ctx context.Context, label *domain.Label) (*domain.Label, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error)
}

type activityLogger interface {
	Log(ctx context.Context, activity domain.Activity) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config tunes board creation.
type Config struct {
	PositionStep int64
	// SeedDefaults creates the default lists and labels on every new board.
	SeedDefaults bool
}

// Service provides board-level operations: boards, membership and the full
// board read.
type Service struct {
	boards   boardRepo
	lists    listRepo
	cards    cardRepo
	labels   labelRepo
	activity activityLogger
	tx       txManager
	cfg      Config
	log      *slog.Logger
}

// NewService creates a new Board service.
func NewService(
	log *slog.Logger,
	boards boardRepo,
	lists listRepo,
	cards cardRepo,
	labels labelRepo,
	activity activityLogger,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.PositionStep < 2 {
		cfg.PositionStep = position.DefaultStep
	}
	return &Service{
		boards:   boards,
		lists:    lists,
		cards:    cards,
		labels:   labels,
		activity: activity,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "board"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
