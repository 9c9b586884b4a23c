// Package activity serves the per-board activity feed.
package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// Page sizes used when no Option overrides them.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type boardRepo interface {
	GetAccess(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardAccess, error)
}

type activityRepo interface {
	ListByBoard(ctx context.Context, boardID uuid.UUID, before *domain.ActivityCursor, limit int) ([]domain.Activity, error)
}

// Service reads the activity log.
type Service struct {
	boards       boardRepo
	activities   activityRepo
	defaultLimit int
	maxLimit     int
	log          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLimits overrides the default and maximum page sizes.
func WithLimits(defaultLimit, maxLimit int) Option {
	return func(s *Service) {
		if defaultLimit > 0 {
			s.defaultLimit = defaultLimit
		}
		if maxLimit >= s.defaultLimit {
			s.maxLimit = maxLimit
		}
	}
}

// NewService creates an activity Service with the default page limits.
func NewService(log *slog.Logger, boards boardRepo, activities activityRepo, opts ...Option) *Service {
	s := &Service{
		boards:       boards,
		activities:   activities,
		defaultLimit: DefaultLimit,
		maxLimit:     MaxLimit,
		log:          log.With("service", "activity"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActivityInput selects one page of a board's feed.
// Limit 0 means DefaultLimit; Before is an opaque cursor from a previous page.
type ListActivityInput struct {
	BoardID uuid.UUID
	Before  string
	Limit   int
}

func (i ListActivityInput) Validate() error {
	var errs []domain.FieldError
	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListActivity returns the board's activity newest first. NextCursor is set
// only when older entries exist.
func (s *Service) ListActivity(ctx context.Context, input ListActivityInput) (*domain.ActivityPage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Limit > s.maxLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", s.maxLimit))
	}

	var before *domain.ActivityCursor
	if input.Before != "" {
		c, err := domain.DecodeActivityCursor(input.Before)
		if err != nil {
			return nil, domain.NewValidationError("before", "invalid cursor")
		}
		before = &c
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}

	access, err := s.boards.GetAccess(ctx, input.BoardID, userID)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	if err := access.RequireView(); err != nil {
		return nil, err
	}

	// One extra row tells whether another page exists.
	items, err := s.activities.ListByBoard(ctx, input.BoardID, before, limit+1)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	page := &domain.ActivityPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		next := domain.CursorOf(page.Items[limit-1]).Encode()
		page.NextCursor = &next
	}
	if page.Items == nil {
		page.Items = []domain.Activity{}
	}
	return page, nil
}
