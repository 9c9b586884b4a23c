package board

import (
	"context"
	"fmt"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// ListBoards returns boards the caller created, belongs to, or that are public.
func (s *Service) ListBoards(ctx context.Context, input ListBoardsInput) ([]domain.Board, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	boards, err := s.boards.ListVisible(ctx, domain.BoardFilter{
		UserID:          userID,
		IncludeArchived: input.IncludeArchived,
	})
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}
