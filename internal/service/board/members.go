package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// ListMembers returns the board's members. Anyone who can view the board may call it.
func (s *Service) ListMembers(ctx context.Context, input BoardIDInput) ([]domain.BoardMember, error) {
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

	members, err := s.boards.ListMembers(ctx, input.BoardID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// AddMember adds a user to the board or changes their role. Owner only.
func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (*domain.BoardMember, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var member *domain.BoardMember
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		access, err := s.boards.GetAccess(txCtx, input.BoardID, userID)
		if err != nil {
			return fmt.Errorf("get board: %w", err)
		}
		if err := access.RequireOwner(); err != nil {
			return err
		}
		if input.UserID == access.Board.CreatedBy && input.Role != domain.BoardRoleOwner {
			return domain.NewValidationError("role", "board creator must stay owner")
		}

		member, err = s.boards.UpsertMember(txCtx, domain.BoardMember{
			BoardID: input.BoardID,
			UserID:  input.UserID,
			Role:    input.Role,
		})
		if err != nil {
			return fmt.Errorf("upsert member: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.Activity{
			BoardID:    input.BoardID,
			UserID:     userID,
			Action:     domain.ActionMemberAdded,
			TargetType: domain.TargetMember,
			TargetID:   input.UserID,
			Details:    map[string]any{"role": input.Role.String()},
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "board member added",
		slog.String("user_id", userID.String()),
		slog.String("board_id", input.BoardID.String()),
		slog.String("member_id", input.UserID.String()),
		slog.String("role", input.Role.String()),
	)

	return member, nil
}

// RemoveMember removes a user from the board. Owner only; the creator cannot be removed.
func (s *Service) RemoveMember(ctx context.Context, input RemoveMemberInput) error {
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
		if input.UserID == access.Board.CreatedBy {
			return domain.NewValidationError("user_id", "board creator cannot be removed")
		}

		if err := s.boards.RemoveMember(txCtx, input.BoardID, input.UserID); err != nil {
			return fmt.Errorf("remove member: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.Activity{
			BoardID:    input.BoardID,
			UserID:     userID,
			Action:     domain.ActionMemberRemoved,
			TargetType: domain.TargetMember,
			TargetID:   input.UserID,
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "board member removed",
		slog.String("user_id", userID.String()),
		slog.String("board_id", input.BoardID.String()),
		slog.String("member_id", input.UserID.String()),
	)

	return nil
}
