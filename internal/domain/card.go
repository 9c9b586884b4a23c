package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a unit of work inside a list.
type Card struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	Title       string
	Description *string
	Position    int64
	DueDate     *time.Time
	DueComplete bool
	IsArchived  bool
	CoverColor  *string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOverdue reports whether the card has an unfinished due date in the past.
func (c Card) IsOverdue(now time.Time) bool {
	if c.DueDate == nil || c.DueComplete {
		return false
	}
	return c.DueDate.Before(now)
}

// CardUpdateParams holds a partial card update. Nil fields stay unchanged.
type CardUpdateParams struct {
	Title       *string
	Description *string // ptr("") clears
	DueDate     *time.Time
	ClearDue    bool
	DueComplete *bool
	CoverColor  *string // ptr("") clears
}

// CardLocation is a card together with the board it belongs to.
type CardLocation struct {
	Card     Card
	BoardID  uuid.UUID
	ListName string
}

// CardDetail is the full card payload returned by the card detail read.
type CardDetail struct {
	CardLocation
	Labels     []Label
	MemberIDs  []uuid.UUID
	Comments   []Comment
	Checklists []Checklist
}

// ChecklistProgress counts completed items across all checklists of a card.
type ChecklistProgress struct {
	Completed int
	Total     int
}

// Progress sums item completion over the card's checklists.
func (d CardDetail) Progress() ChecklistProgress {
	var p ChecklistProgress
	for _, cl := range d.Checklists {
		for _, it := range cl.Items {
			p.Total++
			if it.IsComplete {
				p.Completed++
			}
		}
	}
	return p
}
