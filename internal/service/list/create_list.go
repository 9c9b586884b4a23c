package list

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/position"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// CreateList appends a list to the end of the board.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var created *domain.List
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireEdit(txCtx, input.BoardID, userID); err != nil {
			return err
		}

		// Serializes appends and moves on this board.
		if err := s.boards.Lock(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("lock board: %w", err)
		}

		maxPos, err := s.lists.MaxPosition(txCtx, input.BoardID)
		if err != nil {
			return err
		}

		created, err = s.lists.Create(txCtx, &domain.List{
			BoardID:  input.BoardID,
			Name:     name,
			Position: position.Append(maxPos, s.step),
		})
		if err != nil {
			return fmt.Errorf("create list: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.Activity{
			BoardID:    input.BoardID,
			UserID:     userID,
			Action:     domain.ActionListCreated,
			TargetType: domain.TargetList,
			TargetID:   created.ID,
			Details:    map[string]any{"name": name},
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("user_id", userID.String()),
		slog.String("board_id", input.BoardID.String()),
		slog.String("list_id", created.ID.String()),
	)

	return created, nil
}
