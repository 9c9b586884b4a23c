package card

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 10000
	maxLabelsPerCard  = 50
	maxMembersPerCard = 50
)

// CreateCardInput holds the parameters for appending a card to a list.
type CreateCardInput struct {
	ListID      uuid.UUID
	Title       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError
	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	errs = appendTitleErrors(errs, i.Title)
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 10000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CardIDInput identifies a card.
type CardIDInput struct {
	CardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CardIDInput) Validate() error {
	if i.CardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}
	return nil
}

// UpdateCardInput holds a partial card update.
type UpdateCardInput struct {
	CardID      uuid.UUID
	Title       *string
	Description *string // nil = don't change; ptr("") = clear
	DueDate     *time.Time
	ClearDue    bool
	DueComplete *bool
	CoverColor  *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.DueDate == nil && !i.ClearDue && i.DueComplete == nil && i.CoverColor == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = appendTitleErrors(errs, *i.Title)
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 10000 characters"})
	}
	if i.ClearDue && i.DueDate != nil {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "cannot set and clear at once"})
	}
	if i.CoverColor != nil && *i.CoverColor != "" && !domain.LabelColor(*i.CoverColor).IsValid() {
		errs = append(errs, domain.FieldError{Field: "cover_color", Message: "unknown color"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveCardInput places a card at Index among the visible cards of ListID.
type MoveCardInput struct {
	CardID uuid.UUID
	ListID uuid.UUID
	Index  int
}

// Validate checks all fields and collects all errors.
// Index bounds are checked against the destination list.
func (i MoveCardInput) Validate() error {
	var errs []domain.FieldError
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetLabelsInput replaces a card's label set.
type SetLabelsInput struct {
	CardID   uuid.UUID
	LabelIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i SetLabelsInput) Validate() error {
	var errs []domain.FieldError
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if len(i.LabelIDs) > maxLabelsPerCard {
		errs = append(errs, domain.FieldError{Field: "label_ids", Message: "too many labels"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetMembersInput replaces a card's assignee set.
type SetMembersInput struct {
	CardID  uuid.UUID
	UserIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i SetMembersInput) Validate() error {
	var errs []domain.FieldError
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if len(i.UserIDs) > maxMembersPerCard {
		errs = append(errs, domain.FieldError{Field: "member_ids", Message: "too many members"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendTitleErrors(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

// dedupe drops nil and repeated ids, keeping first occurrence order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
