package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// UpdateCard changes card fields and records what changed.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CardUpdateParams{
		DueDate:     input.DueDate,
		ClearDue:    input.ClearDue,
		DueComplete: input.DueComplete,
		CoverColor:  input.CoverColor,
	}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		params.Title = &trimmed
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		params.Description = &trimmed // "" clears
	}
	if params.DueDate != nil {
		utc := params.DueDate.UTC()
		params.DueDate = &utc
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

		updated, err = s.cards.Update(txCtx, input.CardID, params)
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}

		return s.logActivity(txCtx, loc.BoardID, userID, input.CardID, domain.ActionCardUpdated,
			buildCardChanges(loc.Card, *updated))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card updated",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return updated, nil
}

// buildCardChanges returns only changed fields, plus the current title.
func buildCardChanges(old, updated domain.Card) map[string]any {
	changes := map[string]any{"title": updated.Title}
	if old.Title != updated.Title {
		changes["title_change"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if strOrEmpty(old.Description) != strOrEmpty(updated.Description) {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	if !sameTime(old.DueDate, updated.DueDate) {
		changes["due_date"] = map[string]any{"old": old.DueDate, "new": updated.DueDate}
	}
	if old.DueComplete != updated.DueComplete {
		changes["due_complete"] = map[string]any{"old": old.DueComplete, "new": updated.DueComplete}
	}
	if strOrEmpty(old.CoverColor) != strOrEmpty(updated.CoverColor) {
		changes["cover_color"] = map[string]any{"old": old.CoverColor, "new": updated.CoverColor}
	}
	return changes
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
