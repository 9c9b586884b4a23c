package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// UpdateBoard changes board fields. Owner only.
func (s *Service) UpdateBoard(ctx context.Context, input UpdateBoardInput) (*domain.Board, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.BoardUpdateParams{
		BackgroundColor: input.BackgroundColor,
		IsPrivate:       input.IsPrivate,
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		params.Description = &trimmed // "" clears
	}
	if input.BackgroundImage != nil {
		trimmed := strings.TrimSpace(*input.BackgroundImage)
		params.BackgroundImage = &trimmed
	}

	var updated *domain.Board
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		access, err := s.boards.GetAccess(txCtx, input.BoardID, userID)
		if err != nil {
			return fmt.Errorf("get board: %w", err)
		}
		if err := access.RequireOwner(); err != nil {
			return err
		}

		updated, err = s.boards.Update(txCtx, input.BoardID, params)
		if err != nil {
			return fmt.Errorf("update board: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.Activity{
			BoardID:    input.BoardID,
			UserID:     userID,
			Action:     domain.ActionBoardUpdated,
			TargetType: domain.TargetBoard,
			TargetID:   input.BoardID,
			Details:    buildBoardChanges(access.Board, *updated),
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "board updated",
		slog.String("user_id", userID.String()),
		slog.String("board_id", input.BoardID.String()),
	)

	return updated, nil
}

// buildBoardChanges returns only changed fields.
func buildBoardChanges(old, updated domain.Board) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if strOrEmpty(old.Description) != strOrEmpty(updated.Description) {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	if old.BackgroundColor != updated.BackgroundColor {
		changes["background_color"] = map[string]any{"old": old.BackgroundColor, "new": updated.BackgroundColor}
	}
	if strOrEmpty(old.BackgroundImage) != strOrEmpty(updated.BackgroundImage) {
		changes["background_image"] = map[string]any{"old": old.BackgroundImage, "new": updated.BackgroundImage}
	}
	if old.IsPrivate != updated.IsPrivate {
		changes["is_private"] = map[string]any{"old": old.IsPrivate, "new": updated.IsPrivate}
	}
	return changes
}
