package list

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

const maxNameLen = 100

// CreateListInput holds the parameters for appending a list to a board.
type CreateListInput struct {
	BoardID uuid.UUID
	Name    string
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError
	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	errs = appendNameErrors(errs, i.Name)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameListInput holds the parameters for renaming a list.
type RenameListInput struct {
	ListID uuid.UUID
	Name   string
}

// Validate checks all fields and collects all errors.
func (i RenameListInput) Validate() error {
	var errs []domain.FieldError
	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	errs = appendNameErrors(errs, i.Name)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListIDInput identifies a list for archive and unarchive.
type ListIDInput struct {
	ListID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListIDInput) Validate() error {
	if i.ListID == uuid.Nil {
		return domain.NewValidationError("list_id", "required")
	}
	return nil
}

// MoveListInput holds the parameters for reordering a list.
// Index counts non-archived lists of the board, 0 = first.
type MoveListInput struct {
	ListID uuid.UUID
	Index  int
}

// Validate checks all fields and collects all errors.
func (i MoveListInput) Validate() error {
	if i.ListID == uuid.Nil {
		return domain.NewValidationError("list_id", "required")
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
