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

// ToggleResult is the toggled item together with the card's updated progress.
type ToggleResult struct {
	Item     domain.ChecklistItem
	Progress domain.ChecklistProgress
}

// AddItem appends an item to a checklist.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.ChecklistItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Content)

	var created *domain.ChecklistItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cl, boardID, err := s.checklists.Lock(txCtx, input.ChecklistID)
		if err != nil {
			return fmt.Errorf("lock checklist: %w", err)
		}
		if err := s.requireEdit(txCtx, boardID, userID); err != nil {
			return err
		}

		maxPos, err := s.checklists.MaxItemPosition(txCtx, cl.ID)
		if err != nil {
			return err
		}

		created, err = s.checklists.CreateItem(txCtx, &domain.ChecklistItem{
			ChecklistID: cl.ID,
			Content:     content,
			Position:    position.Append(maxPos, s.step),
		})
		if err != nil {
			return fmt.Errorf("create checklist item: %w", err)
		}

		return s.activity.Log(txCtx, domain.Activity{
			BoardID:    boardID,
			UserID:     userID,
			Action:     domain.ActionChecklistItemAdded,
			TargetType: domain.TargetChecklistItem,
			TargetID:   created.ID,
			Details:    map[string]any{"checklist_id": cl.ID.String(), "card_id": cl.CardID.String()},
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ToggleItem flips an item's completion. Completing stamps the caller and the
// current time; un-completing clears both.
func (s *Service) ToggleItem(ctx context.Context, input ItemIDInput) (*ToggleResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result ToggleResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, boardID, err := s.checklists.LockItem(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("lock checklist item: %w", err)
		}
		if err := s.requireEdit(txCtx, boardID, userID); err != nil {
			return err
		}

		item.Toggle(userID, s.now().UTC())

		saved, err := s.checklists.SaveCompletion(txCtx, *item)
		if err != nil {
			return fmt.Errorf("save completion: %w", err)
		}

		cl, _, err := s.checklists.GetWithBoard(txCtx, saved.ChecklistID)
		if err != nil {
			return fmt.Errorf("get checklist: %w", err)
		}
		all, err := s.checklists.ListByCard(txCtx, cl.CardID)
		if err != nil {
			return err
		}

		result = ToggleResult{
			Item:     *saved,
			Progress: domain.CardDetail{Checklists: all}.Progress(),
		}

		return s.activity.Log(txCtx, domain.Activity{
			BoardID:    boardID,
			UserID:     userID,
			Action:     domain.ActionChecklistItemToggled,
			TargetType: domain.TargetChecklistItem,
			TargetID:   saved.ID,
			Details:    map[string]any{"is_complete": saved.IsComplete, "card_id": cl.CardID.String()},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "checklist item toggled",
		slog.String("user_id", userID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.Bool("is_complete", result.Item.IsComplete),
	)

	return &result, nil
}
