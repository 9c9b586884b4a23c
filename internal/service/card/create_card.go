package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/position"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// CreateCard appends a card to the end of a list.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	var description *string
	if input.Description != nil {
		if d := strings.TrimSpace(*input.Description); d != "" {
			description = &d
		}
	}

	var created *domain.Card
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The list lock serializes appends and moves into this list.
		l, err := s.lists.Lock(txCtx, input.ListID)
		if err != nil {
			return fmt.Errorf("lock list: %w", err)
		}
		if _, err := s.requireEdit(txCtx, l.BoardID, userID); err != nil {
			return err
		}
		if l.IsArchived {
			return domain.ErrNotFound
		}

		maxPos, err := s.cards.MaxPosition(txCtx, l.ID)
		if err != nil {
			return err
		}

		created, err = s.cards.Create(txCtx, &domain.Card{
			ListID:      l.ID,
			Title:       title,
			Description: description,
			Position:    position.Append(maxPos, s.step),
			CreatedBy:   userID,
		})
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}

		return s.logActivity(txCtx, l.BoardID, userID, created.ID, domain.ActionCardCreated,
			map[string]any{"title": title, "list_id": l.ID.String()})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID.String()),
		slog.String("list_id", input.ListID.String()),
		slog.String("card_id", created.ID.String()),
	)

	return created, nil
}
