package checklist

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

const (
	defaultChecklistName = "Checklist"
	maxNameLen           = 100
	maxContentLen        = 500
)

// AddChecklistInput holds the parameters for adding a checklist to a card.
// An empty Name falls back to "Checklist".
type AddChecklistInput struct {
	CardID uuid.UUID
	Name   string
}

func (i AddChecklistInput) Validate() error {
	var errs []domain.FieldError
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Name)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChecklistIDInput identifies a checklist.
type ChecklistIDInput struct {
	ChecklistID uuid.UUID
}

func (i ChecklistIDInput) Validate() error {
	if i.ChecklistID == uuid.Nil {
		return domain.NewValidationError("checklist_id", "required")
	}
	return nil
}

// AddItemInput holds the parameters for appending an item to a checklist.
type AddItemInput struct {
	ChecklistID uuid.UUID
	Content     string
}

func (i AddItemInput) Validate() error {
	var errs []domain.FieldError
	if i.ChecklistID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "checklist_id", Message: "required"})
	}
	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 500 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ItemIDInput identifies a checklist item.
type ItemIDInput struct {
	ItemID uuid.UUID
}

func (i ItemIDInput) Validate() error {
	if i.ItemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}
	return nil
}
