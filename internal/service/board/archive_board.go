package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// ArchiveBoard hides the board from default listings. Owner only.
func (s *Service) ArchiveBoard(ctx context.Context, input BoardIDInput) (*domain.Board, error) {
	return s.setArchived(ctx, input, true)
}

// UnarchiveBoard restores an archived board. Owner only.
func (s *Service) UnarchiveBoard(ctx context.Context, input BoardIDInput) (*domain.Board, error) {
	return s.setArchived(ctx, input, false)
}

func (s *Service) setArchived(ctx context.Context, input BoardIDInput, archived bool) (*domain.Board, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	action := domain.ActionBoardArchived
	if !archived {
		action = domain.ActionBoardUnarchived
	}

	var board *domain.Board
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		access, err := s.boards.GetAccess(txCtx, input.BoardID, userID)
		if err != nil {
			return fmt.Errorf("get board: %w", err)
		}
		if err := access.RequireOwner(); err != nil {
			return err
		}

		board, err = s.boards.SetArchived(txCtx, input.BoardID, archived)
		if err != nil {
			return fmt.Errorf("set board archived: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.Activity{
			BoardID:    input.BoardID,
			UserID:     userID,
			Action:     action,
			TargetType: domain.TargetBoard,
			TargetID:   input.BoardID,
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "board archive flag changed",
		slog.String("user_id", userID.String()),
		slog.String("board_id", input.BoardID.String()),
		slog.Bool("archived", archived),
	)

	return board, nil
}
