package label

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

const maxNameLen = 50

type ListLabelsInput struct {
	BoardID uuid.UUID
}

func (i ListLabelsInput) Validate() error {
	if i.BoardID == uuid.Nil {
		return domain.NewValidationError("board_id", "required")
	}
	return nil
}

// CreateLabelInput holds the parameters for a new label. Name may be empty.
type CreateLabelInput struct {
	BoardID uuid.UUID
	Name    string
	Color   string
}

func (i CreateLabelInput) Validate() error {
	var errs []domain.FieldError
	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	errs = appendNameErrors(errs, i.Name)
	if !domain.LabelColor(i.Color).IsValid() {
		errs = append(errs, domain.FieldError{Field: "color", Message: "unknown color"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

type UpdateLabelInput struct {
	LabelID uuid.UUID
	Name    *string
	Color   *string
}

func (i UpdateLabelInput) Validate() error {
	var errs []domain.FieldError
	if i.LabelID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "label_id", Message: "required"})
	}
	if i.Name == nil && i.Color == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = appendNameErrors(errs, *i.Name)
	}
	if i.Color != nil && !domain.LabelColor(*i.Color).IsValid() {
		errs = append(errs, domain.FieldError{Field: "color", Message: "unknown color"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

type DeleteLabelInput struct {
	LabelID uuid.UUID
}

func (i DeleteLabelInput) Validate() error {
	if i.LabelID == uuid.Nil {
		return domain.NewValidationError("label_id", "required")
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, name string) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(name)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 50 characters"})
	}
	return errs
}
