// Package board implements the Board repository using PostgreSQL.
// It covers board rows, the board_members join table and the explicit
// cascade delete of everything a board owns.
package board

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/boards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boards-backend/internal/domain"
)

// Repo provides board persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new board repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

const boardColumns = `b.id, b.name, b.description, b.background_color, b.background_image,
    b.is_private, b.is_archived, b.created_by, b.created_at, b.updated_at`

type boardRow struct {
	ID              uuid.UUID `db:"id"`
	Name            string    `db:"name"`
	Description     *string   `db:"description"`
	BackgroundColor string    `db:"background_color"`
	BackgroundImage *string   `db:"background_image"`
	IsPrivate       bool      `db:"is_private"`
	IsArchived      bool      `db:"is_archived"`
	CreatedBy       uuid.UUID `db:"created_by"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`

	// Only selected by getAccessSQL.
	Role *string `db:"role"`
}

type memberRow struct {
	BoardID uuid.UUID `db:"board_id"`
	UserID  uuid.UUID `db:"user_id"`
	Role    string    `db:"role"`
	AddedAt time.Time `db:"added_at"`
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + boardColumns + ` FROM boards b WHERE b.id = $1`

const getAccessSQL = `
SELECT ` + boardColumns + `, m.role
FROM boards b
LEFT JOIN board_members m ON m.board_id = b.id AND m.user_id = $2
WHERE b.id = $1`

const lockSQL = `SELECT id FROM boards WHERE id = $1 FOR UPDATE`

const insertSQL = `
INSERT INTO boards AS b (id, name, description, background_color, background_image, is_private, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + boardColumns

const setArchivedSQL = `
UPDATE boards b SET is_archived = $2, updated_at = now()
WHERE b.id = $1
RETURNING ` + boardColumns

const deleteSQL = `DELETE FROM boards WHERE id = $1`

const listMembersSQL = `
SELECT board_id, user_id, role, added_at
FROM board_members
WHERE board_id = $1
ORDER BY added_at, user_id`

const upsertMemberSQL = `
INSERT INTO board_members (board_id, user_id, role)
VALUES ($1, $2, $3)
ON CONFLICT (board_id, user_id) DO UPDATE SET role = EXCLUDED.role
RETURNING board_id, user_id, role, added_at`

const deleteMemberSQL = `DELETE FROM board_members WHERE board_id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a board by primary key.
// Returns domain.ErrNotFound if the board does not exist.
func (r *Repo) GetByID(ctx context.Context, boardID uuid.UUID) (*domain.Board, error) {
	var row boardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, boardID); err != nil {
		return nil, postgres.MapError(err, "board", boardID)
	}

	b := toDomainBoard(row)
	return &b, nil
}

// GetAccess returns the board together with userID's membership role.
// Returns domain.ErrNotFound if the board does not exist.
func (r *Repo) GetAccess(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardAccess, error) {
	var row boardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getAccessSQL, boardID, userID); err != nil {
		return nil, postgres.MapError(err, "board", boardID)
	}

	access := &domain.BoardAccess{Board: toDomainBoard(row), UserID: userID}
	if row.Role != nil {
		role := domain.BoardRole(*row.Role)
		access.Role = &role
	}
	return access, nil
}

// ListVisible returns boards the user created, is a member of, or that are
// public, newest first.
func (r *Repo) ListVisible(ctx context.Context, filter domain.BoardFilter) ([]domain.Board, error) {
	qb := postgres.Builder.
		Select(boardColumns).
		From("boards b").
		Where(sq.Or{
			sq.Eq{"b.created_by": filter.UserID},
			sq.Eq{"b.is_private": false},
			sq.Expr("EXISTS (SELECT 1 FROM board_members m WHERE m.board_id = b.id AND m.user_id = ?)", filter.UserID),
		}).
		OrderBy("b.created_at DESC", "b.id")

	if !filter.IncludeArchived {
		qb = qb.Where(sq.Eq{"b.is_archived": false})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list boards query: %w", err)
	}

	var rows []boardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	boards := make([]domain.Board, len(rows))
	for i, row := range rows {
		boards[i] = toDomainBoard(row)
	}
	return boards, nil
}

// ListMembers returns the board's members in the order they were added.
func (r *Repo) ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.BoardMember, error) {
	var rows []memberRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listMembersSQL, boardID); err != nil {
		return nil, fmt.Errorf("list board members: %w", err)
	}

	members := make([]domain.BoardMember, len(rows))
	for i, row := range rows {
		members[i] = toDomainMember(row)
	}
	return members, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Lock takes a row lock on the board for the rest of the transaction.
// Used to serialize position changes of the board's lists.
func (r *Repo) Lock(ctx context.Context, boardID uuid.UUID) error {
	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, lockSQL, boardID).Scan(&id); err != nil {
		return postgres.MapError(err, "board", boardID)
	}
	return nil
}

// Create inserts a new board and returns the persisted row.
func (r *Repo) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	id := board.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row boardRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insertSQL,
		id, board.Name, board.Description, board.BackgroundColor, board.BackgroundImage, board.IsPrivate, board.CreatedBy,
	)
	if err != nil {
		return nil, postgres.MapError(err, "board", id)
	}

	b := toDomainBoard(row)
	return &b, nil
}

// Update applies a partial update and returns the updated board.
// Returns domain.ErrNotFound if the board does not exist.
func (r *Repo) Update(ctx context.Context, boardID uuid.UUID, params domain.BoardUpdateParams) (*domain.Board, error) {
	set := map[string]any{"updated_at": sq.Expr("now()")}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Description != nil {
		set["description"] = emptyToNil(*params.Description)
	}
	if params.BackgroundColor != nil {
		set["background_color"] = *params.BackgroundColor
	}
	if params.BackgroundImage != nil {
		set["background_image"] = emptyToNil(*params.BackgroundImage)
	}
	if params.IsPrivate != nil {
		set["is_private"] = *params.IsPrivate
	}

	query, args, err := postgres.Builder.
		Update("boards b").
		SetMap(set).
		Where(sq.Eq{"b.id": boardID}).
		Suffix("RETURNING " + boardColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update board query: %w", err)
	}

	var row boardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "board", boardID)
	}

	b := toDomainBoard(row)
	return &b, nil
}

// SetArchived sets or clears the archive flag and returns the updated board.
func (r *Repo) SetArchived(ctx context.Context, boardID uuid.UUID, archived bool) (*domain.Board, error) {
	var row boardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, setArchivedSQL, boardID, archived); err != nil {
		return nil, postgres.MapError(err, "board", boardID)
	}

	b := toDomainBoard(row)
	return &b, nil
}

// Delete hard-deletes the board and everything it owns except its activity log.
// Must be called inside a transaction. Returns domain.ErrNotFound if the board
// does not exist.
func (r *Repo) Delete(ctx context.Context, boardID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if err := postgres.DeleteBoardChildren(ctx, q, boardID); err != nil {
		return postgres.MapError(err, "board", boardID)
	}

	tag, err := q.Exec(ctx, deleteSQL, boardID)
	if err != nil {
		return postgres.MapError(err, "board", boardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("board %s: %w", boardID, domain.ErrNotFound)
	}

	return nil
}

// UpsertMember adds the user to the board or changes their role.
func (r *Repo) UpsertMember(ctx context.Context, member domain.BoardMember) (*domain.BoardMember, error) {
	var row memberRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, upsertMemberSQL,
		member.BoardID, member.UserID, string(member.Role),
	)
	if err != nil {
		return nil, postgres.MapError(err, "board_member", member.UserID)
	}

	m := toDomainMember(row)
	return &m, nil
}

// RemoveMember deletes the membership row.
// Returns domain.ErrNotFound if the user is not a member.
func (r *Repo) RemoveMember(ctx context.Context, boardID, userID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteMemberSQL, boardID, userID)
	if err != nil {
		return postgres.MapError(err, "board_member", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("board_member %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainBoard(row boardRow) domain.Board {
	return domain.Board{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		BackgroundColor: row.BackgroundColor,
		BackgroundImage: row.BackgroundImage,
		IsPrivate:       row.IsPrivate,
		IsArchived:      row.IsArchived,
		CreatedBy:       row.CreatedBy,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func toDomainMember(row memberRow) domain.BoardMember {
	return domain.BoardMember{
		BoardID: row.BoardID,
		UserID:  row.UserID,
		Role:    domain.BoardRole(row.Role),
		AddedAt: row.AddedAt,
	}
}

// emptyToNil maps "" to NULL for clearable text columns.
func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
