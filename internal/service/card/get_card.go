package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// GetCard returns the card detail: labels, assignees, comments (newest first)
// and checklists with their items.
func (s *Service) GetCard(ctx context.Context, input CardIDInput) (*domain.CardDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	loc, err := s.cards.GetByID(ctx, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	access, err := s.boards.GetAccess(ctx, loc.BoardID, userID)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	if err := access.RequireView(); err != nil {
		return nil, err
	}

	detail := &domain.CardDetail{CardLocation: *loc}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail.Labels, err = s.cards.Labels(gctx, loc.Card.ID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.MemberIDs, err = s.cards.MemberIDs(gctx, loc.Card.ID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Comments, err = s.comments.ListByCard(gctx, loc.Card.ID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Checklists, err = s.checklists.ListByCard(gctx, loc.Card.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load card detail: %w", err)
	}

	if detail.Labels == nil {
		detail.Labels = []domain.Label{}
	}
	if detail.MemberIDs == nil {
		detail.MemberIDs = []uuid.UUID{}
	}
	if detail.Comments == nil {
		detail.Comments = []domain.Comment{}
	}
	if detail.Checklists == nil {
		detail.Checklists = []domain.Checklist{}
	}

	return detail, nil
}
