package comment

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

const maxContentLen = 500

// AddCommentInput holds the parameters for commenting on a card.
type AddCommentInput struct {
	CardID  uuid.UUID
	Content string
}

func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	errs = appendContentErrors(errs, i.Content)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditCommentInput holds the parameters for editing a comment.
type EditCommentInput struct {
	CommentID uuid.UUID
	Content   string
}

func (i EditCommentInput) Validate() error {
	var errs []domain.FieldError
	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	errs = appendContentErrors(errs, i.Content)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteCommentInput identifies the comment to delete.
type DeleteCommentInput struct {
	CommentID uuid.UUID
}

func (i DeleteCommentInput) Validate() error {
	if i.CommentID == uuid.Nil {
		return domain.NewValidationError("comment_id", "required")
	}
	return nil
}

func appendContentErrors(errs []domain.FieldError, content string) []domain.FieldError {
	content = strings.TrimSpace(content)
	if content == "" {
		return append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 500 characters"})
	}
	return errs
}
