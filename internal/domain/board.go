package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Board is the top-level container of lists, labels and activity.
type Board struct {
	ID              uuid.UUID
	Name            string
	Description     *string
	BackgroundColor string
	BackgroundImage *string
	IsPrivate       bool
	IsArchived      bool
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BoardMember links a user to a board with a role.
type BoardMember struct {
	BoardID uuid.UUID
	UserID  uuid.UUID
	Role    BoardRole
	AddedAt time.Time
}

// BoardAccess is a board as seen by a particular user.
// Role is nil when the user is not a member of the board.
type BoardAccess struct {
	Board  Board
	UserID uuid.UUID
	Role   *BoardRole
}

// IsOwner reports whether the user created the board or holds the owner role.
func (a BoardAccess) IsOwner() bool {
	if a.Board.CreatedBy == a.UserID {
		return true
	}
	return a.Role != nil && *a.Role == BoardRoleOwner
}

// CanView reports whether the user may read the board.
func (a BoardAccess) CanView() bool {
	if !a.Board.IsPrivate {
		return true
	}
	return a.IsOwner() || a.Role != nil
}

// CanEdit reports whether the user may change the board's contents.
func (a BoardAccess) CanEdit() bool {
	if a.IsOwner() {
		return true
	}
	return a.Role != nil && a.Role.CanEdit()
}

// BoardUpdateParams holds a partial board update. Nil fields stay unchanged.
type BoardUpdateParams struct {
	Name            *string
	Description     *string // ptr("") clears
	BackgroundColor *string
	BackgroundImage *string // ptr("") clears
	IsPrivate       *bool
}

// BoardFilter selects the boards visible to a user.
type BoardFilter struct {
	UserID          uuid.UUID
	IncludeArchived bool
}

// BoardView is the full board payload: lists with their cards and labels.
type BoardView struct {
	Access BoardAccess
	Lists  []ListWithCards
	Labels []Label
}

// ListWithCards is a list together with its cards in position order.
type ListWithCards struct {
	List
	Cards []Card
}

// RequireView returns ErrNotFound when the user may not read the board, so
// private boards are indistinguishable from missing ones.
func (a BoardAccess) RequireView() error {
	if !a.CanView() {
		return fmt.Errorf("board %s: %w", a.Board.ID, ErrNotFound)
	}
	return nil
}

// RequireEdit returns ErrForbidden when the user may read but not change the board.
func (a BoardAccess) RequireEdit() error {
	if err := a.RequireView(); err != nil {
		return err
	}
	if !a.CanEdit() {
		return fmt.Errorf("board %s: edit: %w", a.Board.ID, ErrForbidden)
	}
	return nil
}

// RequireOwner returns ErrForbidden unless the user owns the board.
func (a BoardAccess) RequireOwner() error {
	if err := a.RequireView(); err != nil {
		return err
	}
	if !a.IsOwner() {
		return fmt.Errorf("board %s: owner only: %w", a.Board.ID, ErrForbidden)
	}
	return nil
}
