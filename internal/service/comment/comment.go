package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
	"github.com/heartmarshall/boards-backend/pkg/ctxutil"
)

// AddComment posts a comment on a card. Requires edit rights on the board.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Content)

	var created *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		loc, err := s.cards.GetByID(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		access, err := s.boards.GetAccess(txCtx, loc.BoardID, userID)
		if err != nil {
			return fmt.Errorf("get board: %w", err)
		}
		if err := access.RequireEdit(); err != nil {
			return err
		}

		created, err = s.comments.Create(txCtx, &domain.Comment{CardID: input.CardID, UserID: userID, Content: content})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		if err := s.cards.Touch(txCtx, input.CardID); err != nil {
			return fmt.Errorf("touch card: %w", err)
		}

		return s.record(txCtx, loc.BoardID, userID, created.ID, domain.ActionCommentAdded, input.CardID)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.String("comment_id", created.ID.String()),
	)

	return created, nil
}

// EditComment replaces a comment's text. Only the author may edit.
func (s *Service) EditComment(ctx context.Context, input EditCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, boardID, err := s.comments.GetWithBoard(txCtx, input.CommentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		access, err := s.boards.GetAccess(txCtx, boardID, userID)
		if err != nil {
			return fmt.Errorf("get board: %w", err)
		}
		if err := access.RequireView(); err != nil {
			return err
		}
		if c.UserID != userID {
			return fmt.Errorf("comment %s: author only: %w", c.ID, domain.ErrForbidden)
		}

		updated, err = s.comments.UpdateContent(txCtx, c.ID, strings.TrimSpace(input.Content))
		if err != nil {
			return fmt.Errorf("update comment: %w", err)
		}

		return s.record(txCtx, boardID, userID, c.ID, domain.ActionCommentEdited, c.CardID)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteComment removes a comment. Allowed for the author and the board owner.
func (s *Service) DeleteComment(ctx context.Context, input DeleteCommentInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, boardID, err := s.comments.GetWithBoard(txCtx, input.CommentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		access, err := s.boards.GetAccess(txCtx, boardID, userID)
		if err != nil {
			return fmt.Errorf("get board: %w", err)
		}
		if err := access.RequireView(); err != nil {
			return err
		}
		if c.UserID != userID && !access.IsOwner() {
			return fmt.Errorf("comment %s: author or owner only: %w", c.ID, domain.ErrForbidden)
		}

		if err := s.comments.Delete(txCtx, c.ID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}

		return s.record(txCtx, boardID, userID, c.ID, domain.ActionCommentDeleted, c.CardID)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", input.CommentID.String()),
	)

	return nil
}

func (s *Service) record(ctx context.Context, boardID, userID, commentID uuid.UUID, action domain.ActivityAction, cardID uuid.UUID) error {
	if err := s.activity.Log(ctx, domain.Activity{
		BoardID:    boardID,
		UserID:     userID,
		Action:     action,
		TargetType: domain.TargetComment,
		TargetID:   commentID,
		Details:    map[string]any{"card_id": cardID.String()},
	}); err != nil {
		return fmt.Errorf("activity log: %w", err)
	}
	return nil
}
