package domain

import (
	"time"

	"github.com/google/uuid"
)

// List is an ordered column of cards inside a board.
type List struct {
	ID         uuid.UUID
	BoardID    uuid.UUID
	Name       string
	Position   int64
	IsArchived bool
	CreatedAt  time.Time
}

// Sibling is the minimal view of an ordered item used for position planning.
type Sibling struct {
	ID         uuid.UUID
	Position   int64
	IsArchived bool
}
