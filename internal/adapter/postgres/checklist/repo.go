// Package checklist implements the Checklist and ChecklistItem repository
// using PostgreSQL.
package checklist

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/boards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boards-backend/internal/domain"
)

// ProgressWithCardID is the batch result type for ProgressByCardIDs.
type ProgressWithCardID struct {
	CardID uuid.UUID
	domain.ChecklistProgress
}

// Repo provides checklist persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new checklist repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type checklistRow struct {
	ID       uuid.UUID `db:"id"`
	CardID   uuid.UUID `db:"card_id"`
	Name     string    `db:"name"`
	Position int64     `db:"position"`

	// Only selected by getWithBoardSQL.
	BoardID uuid.UUID `db:"board_id"`
}

type itemRow struct {
	ID          uuid.UUID  `db:"id"`
	ChecklistID uuid.UUID  `db:"checklist_id"`
	Content     string     `db:"content"`
	IsComplete  bool       `db:"is_complete"`
	Position    int64      `db:"position"`
	CompletedBy *uuid.UUID `db:"completed_by"`
	CompletedAt *time.Time `db:"completed_at"`

	// Only selected by lockItemSQL.
	BoardID uuid.UUID `db:"board_id"`
}

type progressRow struct {
	CardID    uuid.UUID `db:"card_id"`
	Completed int       `db:"completed"`
	Total     int       `db:"total"`
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const checklistColumns = `cl.id, cl.card_id, cl.name, cl.position`

const itemColumns = `it.id, it.checklist_id, it.content, it.is_complete, it.position, it.completed_by, it.completed_at`

const getWithBoardSQL = `
SELECT ` + checklistColumns + `, l.board_id
FROM checklists cl
JOIN cards c ON c.id = cl.card_id
JOIN lists l ON l.id = c.list_id
WHERE cl.id = $1`

const lockSQL = getWithBoardSQL + `
FOR UPDATE OF cl`

const listByCardSQL = `
SELECT ` + checklistColumns + `
FROM checklists cl
WHERE cl.card_id = $1
ORDER BY cl.position`

const itemsByChecklistIDsSQL = `
SELECT ` + itemColumns + `
FROM checklist_items it
WHERE it.checklist_id = ANY($1::uuid[])
ORDER BY it.checklist_id, it.position`

const maxPositionSQL = `SELECT MAX(position) FROM checklists WHERE card_id = $1`

const insertSQL = `
INSERT INTO checklists AS cl (id, card_id, name, position)
VALUES ($1, $2, $3, $4)
RETURNING ` + checklistColumns

const deleteItemsSQL = `DELETE FROM checklist_items WHERE checklist_id = $1`

const deleteSQL = `DELETE FROM checklists WHERE id = $1`

const maxItemPositionSQL = `SELECT MAX(position) FROM checklist_items WHERE checklist_id = $1`

const insertItemSQL = `
INSERT INTO checklist_items AS it (id, checklist_id, content, position)
VALUES ($1, $2, $3, $4)
RETURNING ` + itemColumns

const lockItemSQL = `
SELECT ` + itemColumns + `, l.board_id
FROM checklist_items it
JOIN checklists cl ON cl.id = it.checklist_id
JOIN cards c ON c.id = cl.card_id
JOIN lists l ON l.id = c.list_id
WHERE it.id = $1
FOR UPDATE OF it`

const setCompletionSQL = `
UPDATE checklist_items it
SET is_complete = $2, completed_by = $3, completed_at = $4
WHERE it.id = $1
RETURNING ` + itemColumns

const progressByCardIDsSQL = `
SELECT cl.card_id,
       count(it.id) FILTER (WHERE it.is_complete) AS completed,
       count(it.id) AS total
FROM checklists cl
LEFT JOIN checklist_items it ON it.checklist_id = cl.id
WHERE cl.card_id = ANY($1::uuid[])
GROUP BY cl.card_id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetWithBoard returns a checklist (without items) and its board id.
func (r *Repo) GetWithBoard(ctx context.Context, checklistID uuid.UUID) (*domain.Checklist, uuid.UUID, error) {
	return r.getWithBoard(ctx, getWithBoardSQL, checklistID)
}

// ListByCard returns the card's checklists with their items, both in position order.
func (r *Repo) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []checklistRow
	if err := pgxscan.Select(ctx, q, &rows, listByCardSQL, cardID); err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Checklist{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	var items []itemRow
	if err := pgxscan.Select(ctx, q, &items, itemsByChecklistIDsSQL, ids); err != nil {
		return nil, fmt.Errorf("list checklist items: %w", err)
	}

	byChecklist := make(map[uuid.UUID][]domain.ChecklistItem, len(rows))
	for _, it := range items {
		byChecklist[it.ChecklistID] = append(byChecklist[it.ChecklistID], toDomainItem(it))
	}

	out := make([]domain.Checklist, len(rows))
	for i, row := range rows {
		out[i] = toDomainChecklist(row)
		out[i].Items = byChecklist[row.ID]
		if out[i].Items == nil {
			out[i].Items = []domain.ChecklistItem{}
		}
	}
	return out, nil
}

// MaxPosition returns the largest checklist key on the card, or nil.
func (r *Repo) MaxPosition(ctx context.Context, cardID uuid.UUID) (*int64, error) {
	var maxPos *int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, maxPositionSQL, cardID).Scan(&maxPos); err != nil {
		return nil, fmt.Errorf("max checklist position: %w", err)
	}
	return maxPos, nil
}

// MaxItemPosition returns the largest item key in the checklist, or nil.
func (r *Repo) MaxItemPosition(ctx context.Context, checklistID uuid.UUID) (*int64, error) {
	var maxPos *int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, maxItemPositionSQL, checklistID).Scan(&maxPos); err != nil {
		return nil, fmt.Errorf("max checklist item position: %w", err)
	}
	return maxPos, nil
}

// ProgressByCardIDs returns completed/total item counts per card (batch for DataLoader).
// Cards without checklists are absent from the result.
func (r *Repo) ProgressByCardIDs(ctx context.Context, cardIDs []uuid.UUID) ([]ProgressWithCardID, error) {
	if len(cardIDs) == 0 {
		return []ProgressWithCardID{}, nil
	}

	var rows []progressRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, progressByCardIDsSQL, cardIDs); err != nil {
		return nil, fmt.Errorf("checklist progress by card_ids: %w", err)
	}

	out := make([]ProgressWithCardID, len(rows))
	for i, row := range rows {
		out[i] = ProgressWithCardID{
			CardID:            row.CardID,
			ChecklistProgress: domain.ChecklistProgress{Completed: row.Completed, Total: row.Total},
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Lock takes a row lock on the checklist and returns it with its board id.
// Used to serialize item appends.
func (r *Repo) Lock(ctx context.Context, checklistID uuid.UUID) (*domain.Checklist, uuid.UUID, error) {
	return r.getWithBoard(ctx, lockSQL, checklistID)
}

// Create inserts a checklist at the given position.
func (r *Repo) Create(ctx context.Context, cl *domain.Checklist) (*domain.Checklist, error) {
	id := cl.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row checklistRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insertSQL, id, cl.CardID, cl.Name, cl.Position); err != nil {
		return nil, postgres.MapPositionError(err, "checklist", id)
	}

	out := toDomainChecklist(row)
	out.Items = []domain.ChecklistItem{}
	return &out, nil
}

// Delete removes the checklist and its items. Must be called inside a transaction.
func (r *Repo) Delete(ctx context.Context, checklistID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteItemsSQL, checklistID); err != nil {
		return postgres.MapError(err, "checklist", checklistID)
	}

	tag, err := q.Exec(ctx, deleteSQL, checklistID)
	if err != nil {
		return postgres.MapError(err, "checklist", checklistID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("checklist %s: %w", checklistID, domain.ErrNotFound)
	}
	return nil
}

// CreateItem inserts a checklist item at the given position.
func (r *Repo) CreateItem(ctx context.Context, item *domain.ChecklistItem) (*domain.ChecklistItem, error) {
	id := item.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row itemRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insertItemSQL, id, item.ChecklistID, item.Content, item.Position)
	if err != nil {
		return nil, postgres.MapPositionError(err, "checklist_item", id)
	}

	out := toDomainItem(row)
	return &out, nil
}

// LockItem takes a row lock on the item and returns it with its board id.
func (r *Repo) LockItem(ctx context.Context, itemID uuid.UUID) (*domain.ChecklistItem, uuid.UUID, error) {
	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, lockItemSQL, itemID); err != nil {
		return nil, uuid.Nil, postgres.MapError(err, "checklist_item", itemID)
	}

	out := toDomainItem(row)
	return &out, row.BoardID, nil
}

// SaveCompletion persists the item's completion state and completer.
func (r *Repo) SaveCompletion(ctx context.Context, item domain.ChecklistItem) (*domain.ChecklistItem, error) {
	var row itemRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, setCompletionSQL,
		item.ID, item.IsComplete, item.CompletedBy, item.CompletedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "checklist_item", item.ID)
	}

	out := toDomainItem(row)
	return &out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getWithBoard(ctx context.Context, query string, checklistID uuid.UUID) (*domain.Checklist, uuid.UUID, error) {
	var row checklistRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, checklistID); err != nil {
		return nil, uuid.Nil, postgres.MapError(err, "checklist", checklistID)
	}

	cl := toDomainChecklist(row)
	return &cl, row.BoardID, nil
}

func toDomainChecklist(row checklistRow) domain.Checklist {
	return domain.Checklist{
		ID:       row.ID,
		CardID:   row.CardID,
		Name:     row.Name,
		Position: row.Position,
	}
}

func toDomainItem(row itemRow) domain.ChecklistItem {
	return domain.ChecklistItem{
		ID:          row.ID,
		ChecklistID: row.ChecklistID,
		Content:     row.Content,
		IsComplete:  row.IsComplete,
		Position:    row.Position,
		CompletedBy: row.CompletedBy,
		CompletedAt: row.CompletedAt,
	}
}
