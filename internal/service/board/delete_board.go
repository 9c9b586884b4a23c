package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// DeleteBoard hard-deletes the board and everything it owns. Owner only.
// The board's activity log is kept and gets a final board_deleted record.
func (s *Service) DeleteBoard(ctx context.Context, input BoardIDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		access, err := s.boards.GetAccess(txCtx, input.BoardID, userID)
		if err != nil {
			return fmt.Errorf("get board: %w", err)
		}
		if err := access.RequireOwner(); err != nil {
			return err
		}

		if err := s.boards.Delete(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("delete board: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.Activity{
			BoardID:    input.BoardID,
			UserID:     userID,
			Action:     domain.ActionBoardDeleted,
			TargetType: domain.TargetBoard,
			TargetID:   input.BoardID,
			Details:    map[string]any{"name": access.Board.Name},
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "board deleted",
		slog.String("user_id", userID.String()),
		slog.String("board_id", input.BoardID.String()),
	)

	return nil
}
