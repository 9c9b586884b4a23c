package domain

import (
	"time"

	"github.com/google/uuid"
)

// Label is a named color tag scoped to a board.
type Label struct {
	ID      uuid.UUID
	BoardID uuid.UUID
	Name    string
	Color   string
}

// LabelUpdateParams holds a partial label update.
type LabelUpdateParams struct {
	Name  *string
	Color *string
}

// DefaultLabels are seeded into every new board.
var DefaultLabels = []Label{
	{Color: "emerald"},
	{Color: "blue"},
	{Color: "purple"},
	{Color: "red"},
	{Color: "yellow"},
	{Color: "orange"},
}

// DefaultListNames are seeded, in order, into every new board.
var DefaultListNames = []string{"To Do", "In Progress", "Done"}

// Comment is a note left on a card by a user.
type Comment struct {
	ID        uuid.UUID
	CardID    uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Checklist is an ordered group of items on a card.
type Checklist struct {
	ID       uuid.UUID
	CardID   uuid.UUID
	Name     string
	Position int64
	Items    []ChecklistItem
}

// ChecklistItem is a single completable entry of a checklist.
// CompletedBy and CompletedAt are set only while IsComplete is true.
type ChecklistItem struct {
	ID          uuid.UUID
	ChecklistID uuid.UUID
	Content     string
	IsComplete  bool
	Position    int64
	CompletedBy *uuid.UUID
	CompletedAt *time.Time
}

// Toggle flips the completion state and stamps or clears the completer.
func (i *ChecklistItem) Toggle(userID uuid.UUID, now time.Time) {
	if i.IsComplete {
		i.IsComplete = false
		i.CompletedBy = nil
		i.CompletedAt = nil
		return
	}
	i.IsComplete = true
	i.CompletedBy = &userID
	i.CompletedAt = &now
}
