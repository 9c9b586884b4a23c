package card

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/position"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// MoveCard places the card at Index among the visible cards of ListID, which
// may be the card's current list or another list of the same board.
// An out-of-range index returns domain.ErrInvalidPosition and writes nothing.
func (s *Service) MoveCard(ctx context.Context, input MoveCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		moved    *domain.Card
		fromList uuid.UUID
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		loc, err := s.cards.GetByID(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		if _, err := s.requireEdit(txCtx, loc.BoardID, userID); err != nil {
			return err
		}
		if loc.Card.IsArchived {
			return domain.ErrNotFound
		}

		// Lock order: both lists by id, then the card.
		fromList = loc.Card.ListID
		dest, err := s.lockLists(txCtx, fromList, input.ListID)
		if err != nil {
			return fmt.Errorf("lock lists: %w", err)
		}
		if dest.BoardID != loc.BoardID {
			return domain.NewValidationError("list_id", "list belongs to another board")
		}
		if dest.IsArchived {
			return domain.ErrNotFound
		}

		loc, err = s.cards.Lock(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("lock card: %w", err)
		}
		if loc.Card.ListID != fromList {
			return fmt.Errorf("card left list %s: %w", fromList, domain.ErrConflict)
		}
		if loc.Card.IsArchived {
			return domain.ErrNotFound
		}

		siblings, err := s.cards.Siblings(txCtx, dest.ID, loc.Card.ID)
		if err != nil {
			return err
		}

		placement, err := position.Place(toItems(siblings), input.Index, s.step)
		if err != nil {
			return err
		}

		ids, keys := writeSet(loc.Card.ID, placement)
		if err := s.cards.Reposition(txCtx, dest.ID, loc.Card.ID, ids, keys); err != nil {
			return fmt.Errorf("reposition cards: %w", err)
		}

		if err := s.logActivity(txCtx, loc.BoardID, userID, loc.Card.ID, domain.ActionCardMoved, map[string]any{
			"from_list_id": fromList.String(),
			"to_list_id":   dest.ID.String(),
			"from":         loc.ListName,
			"to":           dest.Name,
			"index":        input.Index,
		}); err != nil {
			return err
		}

		card := loc.Card
		card.ListID = dest.ID
		card.Position = placement.Position
		moved = &card
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card moved",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.String("from_list_id", fromList.String()),
		slog.String("to_list_id", input.ListID.String()),
		slog.Int("index", input.Index),
	)

	return moved, nil
}

// lockLists locks the source and destination lists in id order, so two moves
// between the same pair of lists cannot deadlock. It returns the destination.
func (s *Service) lockLists(ctx context.Context, from, to uuid.UUID) (*domain.List, error) {
	if from == to {
		return s.lists.Lock(ctx, to)
	}

	order := []uuid.UUID{from, to}
	if bytes.Compare(to[:], from[:]) < 0 {
		order[0], order[1] = to, from
	}

	var dest *domain.List
	for _, id := range order {
		l, err := s.lists.Lock(ctx, id)
		if err != nil {
			return nil, err
		}
		if id == to {
			dest = l
		}
	}
	return dest, nil
}

func toItems(siblings []domain.Sibling) []position.Item {
	items := make([]position.Item, len(siblings))
	for i, s := range siblings {
		items[i] = position.Item{ID: s.ID, Position: s.Position, Visible: !s.IsArchived}
	}
	return items
}

// writeSet returns the renumbered siblings followed by the moved card, so one
// Reposition call writes every key.
func writeSet(movedID uuid.UUID, p position.Placement) ([]uuid.UUID, []int64) {
	ids := make([]uuid.UUID, 0, len(p.Renumber)+1)
	keys := make([]int64, 0, len(p.Renumber)+1)
	for _, u := range p.Renumber {
		ids = append(ids, u.ID)
		keys = append(keys, u.Position)
	}
	return append(ids, movedID), append(keys, p.Position)
}
