// Package position computes sort keys for ordered siblings (lists on a board,
// cards in a list, checklists, checklist items).
//
// Keys are sparse int64 values. Appends go one step past the current maximum;
// moves take the midpoint of the surrounding keys. When no integer fits between
// the neighbours the whole container is renumbered with even gaps.
package position

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

// DefaultStep is the gap left between keys after an append or a renumber.
const DefaultStep int64 = 1024

// Item is a sibling already stored in the destination container.
// Archived items keep their key but are not addressable by index.
type Item struct {
	ID       uuid.UUID
	Position int64
	Visible  bool
}

// Update is a key change for an existing sibling.
type Update struct {
	ID       uuid.UUID
	Position int64
}

// Placement is the outcome of planning a move.
// Renumber, when non-empty, must be written before Position.
type Placement struct {
	Position int64
	Renumber []Update
}

// Append returns the key for a new item at the end of a container whose
// largest key is maxPos (nil when empty).
func Append(maxPos *int64, step int64) int64 {
	if maxPos == nil {
		return step
	}
	return *maxPos + step
}

// Place plans the key for an item inserted at index target among the visible
// siblings. siblings must be ordered by Position and must not contain the
// moving item itself. target == number of visible siblings means "last".
func Place(siblings []Item, target int, step int64) (Placement, error) {
	if step < 2 {
		return Placement{}, fmt.Errorf("position step must be >= 2, got %d", step)
	}

	visible := 0
	for _, s := range siblings {
		if s.Visible {
			visible++
		}
	}
	if target < 0 || target > visible {
		return Placement{}, fmt.Errorf("index %d outside [0, %d]: %w", target, visible, domain.ErrInvalidPosition)
	}

	gap := gapIndex(siblings, target)

	if pos, ok := between(siblings, gap, step); ok {
		return Placement{Position: pos}, nil
	}

	renumbered := make([]Item, len(siblings))
	updates := make([]Update, 0, len(siblings))
	for i, s := range siblings {
		key := int64(i+1) * step
		renumbered[i] = Item{ID: s.ID, Position: key, Visible: s.Visible}
		if s.Position != key {
			updates = append(updates, Update{ID: s.ID, Position: key})
		}
	}

	pos, _ := between(renumbered, gap, step)
	return Placement{Position: pos, Renumber: updates}, nil
}

// gapIndex maps an index among visible siblings to the slot in the full slice
// before which the item is inserted.
func gapIndex(siblings []Item, target int) int {
	seen := 0
	lastVisible := -1
	for i, s := range siblings {
		if !s.Visible {
			continue
		}
		if seen == target {
			return i
		}
		seen++
		lastVisible = i
	}
	if lastVisible < 0 {
		return len(siblings)
	}
	return lastVisible + 1
}

// between returns a free key for slot gap, or false if the neighbours are adjacent.
func between(siblings []Item, gap int, step int64) (int64, bool) {
	hasLower := gap > 0
	hasUpper := gap < len(siblings)

	switch {
	case !hasLower && !hasUpper:
		return step, true
	case !hasLower:
		return siblings[gap].Position - step, true
	case !hasUpper:
		return siblings[gap-1].Position + step, true
	}

	lower := siblings[gap-1].Position
	upper := siblings[gap].Position
	if upper-lower < 2 {
		return 0, false
	}
	return lower + (upper-lower)/2, true
}
