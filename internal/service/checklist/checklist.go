package checklist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/internal/position"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// AddChecklist appends an empty checklist to a card.
func (s *Service) AddChecklist(ctx context.Context, input AddChecklistInput) (*domain.Checklist, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = defaultChecklistName
	}

	var created *domain.Checklist
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The card lock serializes checklist appends on this card.
		loc, err := s.cards.Lock(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("lock card: %w", err)
		}
		if err := s.requireEdit(txCtx, loc.BoardID, userID); err != nil {
			return err
		}

		maxPos, err := s.checklists.MaxPosition(txCtx, input.CardID)
		if err != nil {
			return err
		}

		created, err = s.checklists.Create(txCtx, &domain.Checklist{
			CardID:   input.CardID,
			Name:     name,
			Position: position.Append(maxPos, s.step),
		})
		if err != nil {
			return fmt.Errorf("create checklist: %w", err)
		}

		return s.activity.Log(txCtx, domain.Activity{
			BoardID:    loc.BoardID,
			UserID:     userID,
			Action:     domain.ActionChecklistAdded,
			TargetType: domain.TargetChecklist,
			TargetID:   created.ID,
			Details:    map[string]any{"name": name, "card_id": input.CardID.String()},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "checklist added",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.String("checklist_id", created.ID.String()),
	)

	return created, nil
}

// DeleteChecklist removes a checklist with all of its items.
func (s *Service) DeleteChecklist(ctx context.Context, input ChecklistIDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cl, boardID, err := s.checklists.GetWithBoard(txCtx, input.ChecklistID)
		if err != nil {
			return fmt.Errorf("get checklist: %w", err)
		}
		if err := s.requireEdit(txCtx, boardID, userID); err != nil {
			return err
		}

		if err := s.checklists.Delete(txCtx, cl.ID); err != nil {
			return fmt.Errorf("delete checklist: %w", err)
		}

		return s.activity.Log(txCtx, domain.Activity{
			BoardID:    boardID,
			UserID:     userID,
			Action:     domain.ActionChecklistDeleted,
			TargetType: domain.TargetChecklist,
			TargetID:   cl.ID,
			Details:    map[string]any{"name": cl.Name, "card_id": cl.CardID.String()},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "checklist deleted",
		slog.String("user_id", userID.String()),
		slog.String("checklist_id", input.ChecklistID.String()),
	)

	return nil
}
