// Package label implements the Label repository using PostgreSQL.
package label

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/boards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boards-backend/internal/domain"
)

// Repo provides label persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new label repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type labelRow struct {
	ID      uuid.UUID `db:"id"`
	BoardID uuid.UUID `db:"board_id"`
	Name    string    `db:"name"`
	Color   string    `db:"color"`
}

const labelColumns = `id, board_id, name, color`

const getByIDSQL = `SELECT ` + labelColumns + ` FROM labels WHERE id = $1`

const listByBoardSQL = `SELECT ` + labelColumns + ` FROM labels WHERE board_id = $1 ORDER BY name, id`

const countInBoardSQL = `SELECT count(*) FROM labels WHERE board_id = $1 AND id = ANY($2::uuid[])`

const insertSQL = `
INSERT INTO labels (id, board_id, name, color)
VALUES ($1, $2, $3, $4)
RETURNING ` + labelColumns

const unlinkSQL = `DELETE FROM card_labels WHERE label_id = $1`

const deleteSQL = `DELETE FROM labels WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a label by primary key.
func (r *Repo) GetByID(ctx context.Context, labelID uuid.UUID) (*domain.Label, error) {
	var row labelRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, labelID); err != nil {
		return nil, postgres.MapError(err, "label", labelID)
	}

	l := domain.Label(row)
	return &l, nil
}

// ListByBoard returns the board's labels ordered by name.
func (r *Repo) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error) {
	var rows []labelRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByBoardSQL, boardID); err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}

	labels := make([]domain.Label, len(rows))
	for i, row := range rows {
		labels[i] = domain.Label(row)
	}
	return labels, nil
}

// CountInBoard returns how many of ids are labels of the board.
func (r *Repo) CountInBoard(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countInBoardSQL, boardID, ids).Scan(&n); err != nil {
		return 0, fmt.Errorf("count labels in board: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a label.
func (r *Repo) Create(ctx context.Context, label *domain.Label) (*domain.Label, error) {
	id := label.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row labelRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insertSQL, id, label.BoardID, label.Name, label.Color)
	if err != nil {
		return nil, postgres.MapError(err, "label", id)
	}

	l := domain.Label(row)
	return &l, nil
}

// Update changes the label's name and/or color.
func (r *Repo) Update(ctx context.Context, labelID uuid.UUID, params domain.LabelUpdateParams) (*domain.Label, error) {
	set := map[string]any{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Color != nil {
		set["color"] = *params.Color
	}
	if len(set) == 0 {
		return r.GetByID(ctx, labelID)
	}

	query, args, err := postgres.Builder.
		Update("labels").
		SetMap(set).
		Where(sq.Eq{"id": labelID}).
		Suffix("RETURNING " + labelColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update label query: %w", err)
	}

	var row labelRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "label", labelID)
	}

	l := domain.Label(row)
	return &l, nil
}

// Delete removes the label from every card and deletes it.
// Must be called inside a transaction.
func (r *Repo) Delete(ctx context.Context, labelID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, unlinkSQL, labelID); err != nil {
		return postgres.MapError(err, "label", labelID)
	}

	tag, err := q.Exec(ctx, deleteSQL, labelID)
	if err != nil {
		return postgres.MapError(err, "label", labelID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("label %s: %w", labelID, domain.ErrNotFound)
	}
	return nil
}
