package list

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// RenameList changes a list's name.
func (s *Service) RenameList(ctx context.Context, input RenameListInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var renamed *domain.List
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.lists.GetByID(txCtx, input.ListID)
		if err != nil {
			return fmt.Errorf("get list: %w", err)
		}
		if err := s.requireEdit(txCtx, old.BoardID, userID); err != nil {
			return err
		}

		renamed, err = s.lists.Rename(txCtx, input.ListID, name)
		if err != nil {
			return fmt.Errorf("rename list: %w", err)
		}

		return s.activity.Log(txCtx, domain.Activity{
			BoardID:    old.BoardID,
			UserID:     userID,
			Action:     domain.ActionListRenamed,
			TargetType: domain.TargetList,
			TargetID:   input.ListID,
			Details:    map[string]any{"name": map[string]any{"old": old.Name, "new": name}},
		})
	})
	if err != nil {
		return nil, err
	}

	return renamed, nil
}

// ArchiveList hides a list and, through it, all of its cards.
func (s *Service) ArchiveList(ctx context.Context, input ListIDInput) (*domain.List, error) {
	return s.setArchived(ctx, input, true)
}

// UnarchiveList restores an archived list.
func (s *Service) UnarchiveList(ctx context.Context, input ListIDInput) (*domain.List, error) {
	return s.setArchived(ctx, input, false)
}

func (s *Service) setArchived(ctx context.Context, input ListIDInput, archived bool) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	action := domain.ActionListArchived
	if !archived {
		action = domain.ActionListUnarchived
	}

	var updated *domain.List
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, err := s.lists.GetByID(txCtx, input.ListID)
		if err != nil {
			return fmt.Errorf("get list: %w", err)
		}
		if err := s.requireEdit(txCtx, l.BoardID, userID); err != nil {
			return err
		}

		updated, err = s.lists.SetArchived(txCtx, input.ListID, archived)
		if err != nil {
			return fmt.Errorf("set list archived: %w", err)
		}

		return s.activity.Log(txCtx, domain.Activity{
			BoardID:    l.BoardID,
			UserID:     userID,
			Action:     action,
			TargetType: domain.TargetList,
			TargetID:   input.ListID,
			Details:    map[string]any{"name": l.Name},
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
