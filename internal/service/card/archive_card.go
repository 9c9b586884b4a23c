package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// ArchiveCard hides a card from the board view. Its position is kept.
func (s *Service) ArchiveCard(ctx context.Context, input CardIDInput) (*domain.Card, error) {
	return s.setArchived(ctx, input, true)
}

// UnarchiveCard restores an archived card at its old position.
func (s *Service) UnarchiveCard(ctx context.Context, input CardIDInput) (*domain.Card, error) {
	return s.setArchived(ctx, input, false)
}

func (s *Service) setArchived(ctx context.Context, input CardIDInput, archived bool) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	action := domain.ActionCardArchived
	if !archived {
		action = domain.ActionCardUnarchived
	}

	var updated *domain.Card
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		loc, err := s.cards.GetByID(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		if _, err := s.requireEdit(txCtx, loc.BoardID, userID); err != nil {
			return err
		}

		updated, err = s.cards.SetArchived(txCtx, input.CardID, archived)
		if err != nil {
			return fmt.Errorf("set card archived: %w", err)
		}

		return s.logActivity(txCtx, loc.BoardID, userID, input.CardID, action, map[string]any{"title": loc.Card.Title})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card archive flag changed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.Bool("archived", archived),
	)

	return updated, nil
}

// DeleteCard hard-deletes a card with its checklists, comments and join rows.
func (s *Service) DeleteCard(ctx context.Context, input CardIDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		loc, err := s.cards.GetByID(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		if _, err := s.requireEdit(txCtx, loc.BoardID, userID); err != nil {
			return err
		}

		if err := s.cards.Delete(txCtx, input.CardID); err != nil {
			return fmt.Errorf("delete card: %w", err)
		}

		return s.logActivity(txCtx, loc.BoardID, userID, input.CardID, domain.ActionCardDeleted, map[string]any{"title": loc.Card.Title})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return nil
}
