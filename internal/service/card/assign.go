package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// SetLabels replaces the card's labels. Every label must belong to the card's board.
func (s *Service) SetLabels(ctx context.Context, input SetLabelsInput) ([]uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	labelIDs := dedupe(input.LabelIDs)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		loc, err := s.cards.GetByID(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		if _, err := s.requireEdit(txCtx, loc.BoardID, userID); err != nil {
			return err
		}

		n, err := s.labels.CountInBoard(txCtx, loc.BoardID, labelIDs)
		if err != nil {
			return fmt.Errorf("count labels: %w", err)
		}
		if n != len(labelIDs) {
			return domain.NewValidationError("label_ids", "labels must belong to the card's board")
		}

		if err := s.cards.ReplaceLabels(txCtx, input.CardID, labelIDs); err != nil {
			return fmt.Errorf("replace card labels: %w", err)
		}

		return s.logActivity(txCtx, loc.BoardID, userID, input.CardID, domain.ActionCardLabelsSet,
			map[string]any{"label_ids": idStrings(labelIDs)})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card labels set",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.Int("count", len(labelIDs)),
	)

	return labelIDs, nil
}

// SetMembers replaces the card's assignees. Assignees must be the board's
// creator or one of its members.
func (s *Service) SetMembers(ctx context.Context, input SetMembersInput) ([]uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	memberIDs := dedupe(input.UserIDs)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		loc, err := s.cards.GetByID(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		access, err := s.requireEdit(txCtx, loc.BoardID, userID)
		if err != nil {
			return err
		}

		if len(memberIDs) > 0 {
			members, err := s.boards.ListMembers(txCtx, loc.BoardID)
			if err != nil {
				return fmt.Errorf("list board members: %w", err)
			}
			allowed := map[uuid.UUID]struct{}{access.Board.CreatedBy: {}}
			for _, m := range members {
				allowed[m.UserID] = struct{}{}
			}
			for _, id := range memberIDs {
				if _, ok := allowed[id]; !ok {
					return domain.NewValidationError("member_ids", fmt.Sprintf("user %s is not a board member", id))
				}
			}
		}

		if err := s.cards.ReplaceMembers(txCtx, input.CardID, memberIDs); err != nil {
			return fmt.Errorf("replace card members: %w", err)
		}

		return s.logActivity(txCtx, loc.BoardID, userID, input.CardID, domain.ActionCardMembersSet,
			map[string]any{"member_ids": idStrings(memberIDs)})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card members set",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.Int("count", len(memberIDs)),
	)

	return memberIDs, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
