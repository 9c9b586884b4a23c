package board

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 5000
	maxImageLen       = 255
)

// ListBoardsInput holds the parameters for listing boards.
type ListBoardsInput struct {
	IncludeArchived bool
}

// CreateBoardInput holds the parameters for creating a board.
type CreateBoardInput struct {
	Name            string
	Description     *string
	BackgroundColor *string
	BackgroundImage *string
	IsPrivate       bool
}

// Validate checks all fields and collects all errors.
func (i CreateBoardInput) Validate() error {
	var errs []domain.FieldError

	errs = appendNameErrors(errs, i.Name)
	errs = appendOptionalErrors(errs, i.Description, i.BackgroundColor, i.BackgroundImage)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetBoardInput holds the parameters for reading a full board.
type GetBoardInput struct {
	BoardID         uuid.UUID
	IncludeArchived bool
}

// Validate checks all fields and collects all errors.
func (i GetBoardInput) Validate() error {
	if i.BoardID == uuid.Nil {
		return domain.NewValidationError("board_id", "required")
	}
	return nil
}

// UpdateBoardInput holds the parameters for updating a board.
type UpdateBoardInput struct {
	BoardID         uuid.UUID
	Name            *string
	Description     *string // nil = don't change; ptr("") = clear
	BackgroundColor *string
	BackgroundImage *string // nil = don't change; ptr("") = clear
	IsPrivate       *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateBoardInput) Validate() error {
	var errs []domain.FieldError

	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.BackgroundColor == nil && i.BackgroundImage == nil && i.IsPrivate == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = appendNameErrors(errs, *i.Name)
	}
	errs = appendOptionalErrors(errs, i.Description, i.BackgroundColor, i.BackgroundImage)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BoardIDInput identifies a board for archive, unarchive, delete and reads.
type BoardIDInput struct {
	BoardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i BoardIDInput) Validate() error {
	if i.BoardID == uuid.Nil {
		return domain.NewValidationError("board_id", "required")
	}
	return nil
}

// AddMemberInput holds the parameters for adding or re-roling a member.
type AddMemberInput struct {
	BoardID uuid.UUID
	UserID  uuid.UUID
	Role    domain.BoardRole
}

// Validate checks all fields and collects all errors.
func (i AddMemberInput) Validate() error {
	var errs []domain.FieldError
	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be one of owner, admin, member, viewer"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemoveMemberInput holds the parameters for removing a member.
type RemoveMemberInput struct {
	BoardID uuid.UUID
	UserID  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemoveMemberInput) Validate() error {
	var errs []domain.FieldError
	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}

func appendOptionalErrors(errs []domain.FieldError, description, color, image *string) []domain.FieldError {
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if color != nil && !domain.LabelColor(*color).IsValid() {
		errs = append(errs, domain.FieldError{Field: "background_color", Message: "unknown color"})
	}
	if image != nil && len(*image) > maxImageLen {
		errs = append(errs, domain.FieldError{Field: "background_image", Message: "max 255 characters"})
	}
	return errs
}
