package list

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/position"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// MoveList places the list at Index among the board's non-archived lists.
// An out-of-range index returns domain.ErrInvalidPosition and writes nothing.
func (s *Service) MoveList(ctx context.Context, input MoveListInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var moved *domain.List
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, err := s.lists.GetByID(txCtx, input.ListID)
		if err != nil {
			return fmt.Errorf("get list: %w", err)
		}
		if err := s.requireEdit(txCtx, l.BoardID, userID); err != nil {
			return err
		}

		if err := s.boards.Lock(txCtx, l.BoardID); err != nil {
			return fmt.Errorf("lock board: %w", err)
		}

		siblings, err := s.lists.Siblings(txCtx, l.BoardID, l.ID)
		if err != nil {
			return err
		}

		placement, err := position.Place(toItems(siblings), input.Index, s.step)
		if err != nil {
			return err
		}

		ids, keys := writeSet(l.ID, placement)
		if err := s.lists.Reposition(txCtx, l.BoardID, ids, keys); err != nil {
			return fmt.Errorf("reposition lists: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.Activity{
			BoardID:    l.BoardID,
			UserID:     userID,
			Action:     domain.ActionListMoved,
			TargetType: domain.TargetList,
			TargetID:   l.ID,
			Details:    map[string]any{"index": input.Index},
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}

		moved = l
		moved.Position = placement.Position
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "list moved",
		slog.String("user_id", userID.String()),
		slog.String("list_id", input.ListID.String()),
		slog.Int("index", input.Index),
	)

	return moved, nil
}

func toItems(siblings []domain.Sibling) []position.Item {
	items := make([]position.Item, len(siblings))
	for i, s := range siblings {
		items[i] = position.Item{ID: s.ID, Position: s.Position, Visible: !s.IsArchived}
	}
	return items
}

// writeSet returns the renumbered siblings followed by the moved item.
func writeSet(movedID uuid.UUID, p position.Placement) ([]uuid.UUID, []int64) {
	ids := make([]uuid.UUID, 0, len(p.Renumber)+1)
	keys := make([]int64, 0, len(p.Renumber)+1)
	for _, u := range p.Renumber {
		ids = append(ids, u.ID)
		keys = append(keys, u.Position)
	}
	return append(ids, movedID), append(keys, p.Position)
}
