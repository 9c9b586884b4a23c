package label

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// ListLabels returns the labels of a board the caller can view.
func (s *Service) ListLabels(ctx context.Context, input ListLabelsInput) ([]domain.Label, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	access, err := s.boards.GetAccess(ctx, input.BoardID, userID)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	if err := access.RequireView(); err != nil {
		return nil, err
	}

	labels, err := s.labels.ListByBoard(ctx, input.BoardID)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	return labels, nil
}

// CreateLabel adds a label to the board.
func (s *Service) CreateLabel(ctx context.Context, input CreateLabelInput) (*domain.Label, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Label
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireEdit(txCtx, input.BoardID, userID); err != nil {
			return err
		}

		var err error
		created, err = s.labels.Create(txCtx, &domain.Label{
			BoardID: input.BoardID,
			Name:    strings.TrimSpace(input.Name),
			Color:   input.Color,
		})
		if err != nil {
			return fmt.Errorf("create label: %w", err)
		}

		return s.record(txCtx, input.BoardID, userID, created.ID, domain.ActionLabelCreated,
			map[string]any{"name": created.Name, "color": created.Color})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "label created",
		slog.String("user_id", userID.String()),
		slog.String("board_id", input.BoardID.String()),
		slog.String("label_id", created.ID.String()),
	)

	return created, nil
}

// UpdateLabel renames or recolors a label.
func (s *Service) UpdateLabel(ctx context.Context, input UpdateLabelInput) (*domain.Label, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.LabelUpdateParams{Color: input.Color}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}

	var updated *domain.Label
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.labels.GetByID(txCtx, input.LabelID)
		if err != nil {
			return fmt.Errorf("get label: %w", err)
		}
		if err := s.requireEdit(txCtx, old.BoardID, userID); err != nil {
			return err
		}

		updated, err = s.labels.Update(txCtx, input.LabelID, params)
		if err != nil {
			return fmt.Errorf("update label: %w", err)
		}

		changes := make(map[string]any)
		if old.Name != updated.Name {
			changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
		}
		if old.Color != updated.Color {
			changes["color"] = map[string]any{"old": old.Color, "new": updated.Color}
		}
		return s.record(txCtx, old.BoardID, userID, input.LabelID, domain.ActionLabelUpdated, changes)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteLabel removes a label and detaches it from every card.
func (s *Service) DeleteLabel(ctx context.Context, input DeleteLabelInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.labels.GetByID(txCtx, input.LabelID)
		if err != nil {
			return fmt.Errorf("get label: %w", err)
		}
		if err := s.requireEdit(txCtx, old.BoardID, userID); err != nil {
			return err
		}

		if err := s.labels.Delete(txCtx, input.LabelID); err != nil {
			return fmt.Errorf("delete label: %w", err)
		}

		return s.record(txCtx, old.BoardID, userID, input.LabelID, domain.ActionLabelDeleted,
			map[string]any{"name": old.Name, "color": old.Color})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "label deleted",
		slog.String("user_id", userID.String()),
		slog.String("label_id", input.LabelID.String()),
	)

	return nil
}

func (s *Service) requireEdit(ctx context.Context, boardID, userID uuid.UUID) error {
	access, err := s.boards.GetAccess(ctx, boardID, userID)
	if err != nil {
		return fmt.Errorf("get board: %w", err)
	}
	return access.RequireEdit()
}

func (s *Service) record(ctx context.Context, boardID, userID, labelID uuid.UUID, action domain.ActivityAction, details map[string]any) error {
	if err := s.activity.Log(ctx, domain.Activity{
		BoardID:    boardID,
		UserID:     userID,
		Action:     action,
		TargetType: domain.TargetLabel,
		TargetID:   labelID,
		Details:    details,
	}); err != nil {
		return fmt.Errorf("activity log: %w", err)
	}
	return nil
}
