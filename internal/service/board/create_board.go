package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

const defaultBackgroundColor = "slate"

// CreateBoard creates a board owned by the caller, with the owner membership
// and, when configured, the default lists and labels.
func (s *Service) CreateBoard(ctx context.Context, input CreateBoardInput) (*domain.Board, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	color := defaultBackgroundColor
	if input.BackgroundColor != nil {
		color = *input.BackgroundColor
	}

	var created *domain.Board
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.boards.Create(txCtx, &domain.Board{
			Name:            name,
			Description:     trimOrNil(input.Description),
			BackgroundColor: color,
			BackgroundImage: trimOrNil(input.BackgroundImage),
			IsPrivate:       input.IsPrivate,
			CreatedBy:       userID,
		})
		if createErr != nil {
			return fmt.Errorf("create board: %w", createErr)
		}

		if _, err := s.boards.UpsertMember(txCtx, domain.BoardMember{
			BoardID: created.ID,
			UserID:  userID,
			Role:    domain.BoardRoleOwner,
		}); err != nil {
			return fmt.Errorf("add owner: %w", err)
		}

		if s.cfg.SeedDefaults {
			if err := s.seedDefaults(txCtx, created); err != nil {
				return err
			}
		}

		if err := s.activity.Log(txCtx, domain.Activity{
			BoardID:    created.ID,
			UserID:     userID,
			Action:     domain.ActionBoardCreated,
			TargetType: domain.TargetBoard,
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

	s.log.InfoContext(ctx, "board created",
		slog.String("user_id", userID.String()),
		slog.String("board_id", created.ID.String()),
	)

	return created, nil
}

func (s *Service) seedDefaults(ctx context.Context, board *domain.Board) error {
	for _, l := range domain.DefaultLabels {
		if _, err := s.labels.Create(ctx, &domain.Label{BoardID: board.ID, Name: l.Name, Color: l.Color}); err != nil {
			return fmt.Errorf("seed label %s: %w", l.Color, err)
		}
	}
	for i, name := range domain.DefaultListNames {
		if _, err := s.lists.Create(ctx, &domain.List{
			BoardID:  board.ID,
			Name:     name,
			Position: int64(i+1) * s.cfg.PositionStep,
		}); err != nil {
			return fmt.Errorf("seed list %q: %w", name, err)
		}
	}
	return nil
}
