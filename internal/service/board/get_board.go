package board

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// GetBoard returns the board with its lists, cards and labels.
// Archived lists and cards are hidden unless IncludeArchived is set.
func (s *Service) GetBoard(ctx context.Context, input GetBoardInput) (*domain.BoardView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	access, err := s.boards.GetAccess(ctx, input.BoardID, userID)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	if err := access.RequireView(); err != nil {
		return nil, err
	}

	var (
		lists  []domain.List
		cards  []domain.Card
		labels []domain.Label
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lists, err = s.lists.ListByBoard(gctx, input.BoardID, input.IncludeArchived)
		return err
	})
	g.Go(func() error {
		var err error
		cards, err = s.cards.ListByBoard(gctx, input.BoardID, input.IncludeArchived)
		return err
	})
	g.Go(func() error {
		var err error
		labels, err = s.labels.ListByBoard(gctx, input.BoardID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load board contents: %w", err)
	}

	return &domain.BoardView{
		Access: *access,
		Lists:  groupCards(lists, cards),
		Labels: labels,
	}, nil
}

// groupCards attaches cards to their lists. cards must already be ordered by
// position; cards of lists not in lists are dropped.
func groupCards(lists []domain.List, cards []domain.Card) []domain.ListWithCards {
	byList := make(map[uuid.UUID][]domain.Card, len(lists))
	for _, c := range cards {
		byList[c.ListID] = append(byList[c.ListID], c)
	}

	out := make([]domain.ListWithCards, len(lists))
	for i, l := range lists {
		out[i] = domain.ListWithCards{List: l, Cards: byList[l.ID]}
		if out[i].Cards == nil {
			out[i].Cards = []domain.Card{}
		}
	}
	return out
}
