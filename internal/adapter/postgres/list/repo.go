// Package list implements the List repository using PostgreSQL.
package list

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/boards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boards-backend/internal/domain"
)

// Repo provides list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type listRow struct {
	ID         uuid.UUID `db:"id"`
	BoardID    uuid.UUID `db:"board_id"`
	Name       string    `db:"name"`
	Position   int64     `db:"position"`
	IsArchived bool      `db:"is_archived"`
	CreatedAt  time.Time `db:"created_at"`
}

type siblingRow struct {
	ID         uuid.UUID `db:"id"`
	Position   int64     `db:"position"`
	IsArchived bool      `db:"is_archived"`
}

const listColumns = `id, board_id, name, position, is_archived, created_at`

const getByIDSQL = `SELECT ` + listColumns + ` FROM lists WHERE id = $1`

const lockSQL = `SELECT ` + listColumns + ` FROM lists WHERE id = $1 FOR UPDATE`

const listByBoardSQL = `
SELECT ` + listColumns + `
FROM lists
WHERE board_id = $1 AND ($2 OR NOT is_archived)
ORDER BY position`

const maxPositionSQL = `SELECT MAX(position) FROM lists WHERE board_id = $1`

const siblingsSQL = `
SELECT id, position, is_archived
FROM lists
WHERE board_id = $1 AND id <> $2
ORDER BY position`

const insertSQL = `
INSERT INTO lists (id, board_id, name, position)
VALUES ($1, $2, $3, $4)
RETURNING ` + listColumns

const renameSQL = `UPDATE lists SET name = $2 WHERE id = $1 RETURNING ` + listColumns

const setArchivedSQL = `UPDATE lists SET is_archived = $2 WHERE id = $1 RETURNING ` + listColumns

// A single statement so the deferrable unique constraint is checked once,
// after every key has moved.
const repositionSQL = `
UPDATE lists l
SET position = v.position
FROM unnest($2::uuid[], $3::bigint[]) AS v(id, position)
WHERE l.id = v.id AND l.board_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a list by primary key.
// Returns domain.ErrNotFound if the list does not exist.
func (r *Repo) GetByID(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
	var row listRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, listID); err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}

	l := toDomainList(row)
	return &l, nil
}

// ListByBoard returns the board's lists in position order.
// Archived lists are included only when includeArchived is true.
func (r *Repo) ListByBoard(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.List, error) {
	var rows []listRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByBoardSQL, boardID, includeArchived); err != nil {
		return nil, fmt.Errorf("list lists by board: %w", err)
	}

	lists := make([]domain.List, len(rows))
	for i, row := range rows {
		lists[i] = toDomainList(row)
	}
	return lists, nil
}

// MaxPosition returns the largest key on the board, or nil if it has no lists.
func (r *Repo) MaxPosition(ctx context.Context, boardID uuid.UUID) (*int64, error) {
	var maxPos *int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, maxPositionSQL, boardID).Scan(&maxPos); err != nil {
		return nil, fmt.Errorf("max list position: %w", err)
	}
	return maxPos, nil
}

// Siblings returns every list of the board except excludeID, in position order.
func (r *Repo) Siblings(ctx context.Context, boardID, excludeID uuid.UUID) ([]domain.Sibling, error) {
	var rows []siblingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, siblingsSQL, boardID, excludeID); err != nil {
		return nil, fmt.Errorf("list siblings: %w", err)
	}

	out := make([]domain.Sibling, len(rows))
	for i, row := range rows {
		out[i] = domain.Sibling{ID: row.ID, Position: row.Position, IsArchived: row.IsArchived}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Lock takes a row lock on the list and returns it.
// Used to serialize position changes of the list's cards.
func (r *Repo) Lock(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
	var row listRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, lockSQL, listID); err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}

	l := toDomainList(row)
	return &l, nil
}

// Create inserts a list at the given position.
func (r *Repo) Create(ctx context.Context, list *domain.List) (*domain.List, error) {
	id := list.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row listRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insertSQL, id, list.BoardID, list.Name, list.Position)
	if err != nil {
		return nil, postgres.MapPositionError(err, "list", id)
	}

	l := toDomainList(row)
	return &l, nil
}

// Rename changes the list name.
func (r *Repo) Rename(ctx context.Context, listID uuid.UUID, name string) (*domain.List, error) {
	var row listRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, renameSQL, listID, name); err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}

	l := toDomainList(row)
	return &l, nil
}

// SetArchived sets or clears the archive flag. Cards keep their own flag.
func (r *Repo) SetArchived(ctx context.Context, listID uuid.UUID, archived bool) (*domain.List, error) {
	var row listRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, setArchivedSQL, listID, archived); err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}

	l := toDomainList(row)
	return &l, nil
}

// Reposition writes new keys for lists of one board in a single statement.
func (r *Repo) Reposition(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID, positions []int64) error {
	if len(ids) != len(positions) {
		return fmt.Errorf("reposition lists: %d ids for %d positions", len(ids), len(positions))
	}
	if len(ids) == 0 {
		return nil
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, repositionSQL, boardID, ids, positions); err != nil {
		return postgres.MapPositionError(err, "list", boardID)
	}
	return nil
}

func toDomainList(row listRow) domain.List {
	return domain.List{
		ID:         row.ID,
		BoardID:    row.BoardID,
		Name:       row.Name,
		Position:   row.Position,
		IsArchived: row.IsArchived,
		CreatedAt:  row.CreatedAt,
	}
}
