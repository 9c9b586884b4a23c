// Package card implements the Card repository using PostgreSQL.
// It also owns the card_labels and card_members join tables.
package card

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

// LabelWithCardID is the batch result type for LabelsByCardIDs.
type LabelWithCardID struct {
	CardID uuid.UUID
	domain.Label
}

// MemberWithCardID is the batch result type for MemberIDsByCardIDs.
type MemberWithCardID struct {
	CardID uuid.UUID
	UserID uuid.UUID
}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

const cardColumns = `c.id, c.list_id, c.title, c.description, c.position, c.due_date,
    c.due_complete, c.is_archived, c.cover_color, c.created_by, c.created_at, c.updated_at`

type cardRow struct {
	ID          uuid.UUID  `db:"id"`
	ListID      uuid.UUID  `db:"list_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Position    int64      `db:"position"`
	DueDate     *time.Time `db:"due_date"`
	DueComplete bool       `db:"due_complete"`
	IsArchived  bool       `db:"is_archived"`
	CoverColor  *string    `db:"cover_color"`
	CreatedBy   uuid.UUID  `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`

	// Only selected by getLocationSQL.
	BoardID  uuid.UUID `db:"board_id"`
	ListName string    `db:"list_name"`
}

type siblingRow struct {
	ID         uuid.UUID `db:"id"`
	Position   int64     `db:"position"`
	IsArchived bool      `db:"is_archived"`
}

type labelRow struct {
	CardID  uuid.UUID `db:"card_id"`
	ID      uuid.UUID `db:"id"`
	BoardID uuid.UUID `db:"board_id"`
	Name    string    `db:"name"`
	Color   string    `db:"color"`
}

type memberRow struct {
	CardID uuid.UUID `db:"card_id"`
	UserID uuid.UUID `db:"user_id"`
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getLocationSQL = `
SELECT ` + cardColumns + `, l.board_id, l.name AS list_name
FROM cards c
JOIN lists l ON l.id = c.list_id
WHERE c.id = $1`

const lockSQL = getLocationSQL + `
FOR UPDATE OF c`

const listByBoardSQL = `
SELECT ` + cardColumns + `
FROM cards c
JOIN lists l ON l.id = c.list_id
WHERE l.board_id = $1 AND ($2 OR (NOT c.is_archived AND NOT l.is_archived))
ORDER BY l.position, c.position`

const maxPositionSQL = `SELECT MAX(position) FROM cards WHERE list_id = $1`

const siblingsSQL = `
SELECT id, position, is_archived
FROM cards
WHERE list_id = $1 AND id <> $2
ORDER BY position`

const insertSQL = `
INSERT INTO cards AS c (id, list_id, title, description, position, due_date, cover_color, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + cardColumns

const setArchivedSQL = `
UPDATE cards c SET is_archived = $2, updated_at = now()
WHERE c.id = $1
RETURNING ` + cardColumns

const deleteSQL = `DELETE FROM cards WHERE id = $1`

// The moved card changes list_id here; siblings already belong to $1.
// One statement so the deferrable unique constraint is checked once.
// Only the moved card ($4) changes list. Siblings are renumbered only while
// they are still in $1, so a stale plan cannot pull back a card that a
// concurrent move has already taken elsewhere.
const repositionSQL = `
UPDATE cards c
SET position = v.position,
    list_id  = CASE WHEN c.id = $4 THEN $1::uuid ELSE c.list_id END
FROM unnest($2::uuid[], $3::bigint[]) AS v(id, position)
WHERE c.id = v.id
  AND (c.list_id = $1 OR c.id = $4)`

const touchSQL = `UPDATE cards SET updated_at = now() WHERE id = $1`

const labelsByCardIDsSQL = `
SELECT cl.card_id, lb.id, lb.board_id, lb.name, lb.color
FROM card_labels cl
JOIN labels lb ON lb.id = cl.label_id
WHERE cl.card_id = ANY($1::uuid[])
ORDER BY cl.card_id, lb.name, lb.id`

const membersByCardIDsSQL = `
SELECT card_id, user_id
FROM card_members
WHERE card_id = ANY($1::uuid[])
ORDER BY card_id, user_id`

const clearLabelsSQL = `DELETE FROM card_labels WHERE card_id = $1`

const insertLabelsSQL = `
INSERT INTO card_labels (card_id, label_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`

const clearMembersSQL = `DELETE FROM card_members WHERE card_id = $1`

const insertMembersSQL = `
INSERT INTO card_members (card_id, user_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card with its list name and board.
// Returns domain.ErrNotFound if the card does not exist.
func (r *Repo) GetByID(ctx context.Context, cardID uuid.UUID) (*domain.CardLocation, error) {
	return r.getLocation(ctx, getLocationSQL, cardID)
}

// ListByBoard returns the board's cards ordered by list then card position.
// Without includeArchived, archived cards and cards of archived lists are skipped.
func (r *Repo) ListByBoard(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.Card, error) {
	var rows []cardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByBoardSQL, boardID, includeArchived); err != nil {
		return nil, fmt.Errorf("list cards by board: %w", err)
	}

	cards := make([]domain.Card, len(rows))
	for i, row := range rows {
		cards[i] = toDomainCard(row)
	}
	return cards, nil
}

// MaxPosition returns the largest key in the list, or nil if it is empty.
func (r *Repo) MaxPosition(ctx context.Context, listID uuid.UUID) (*int64, error) {
	var maxPos *int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, maxPositionSQL, listID).Scan(&maxPos); err != nil {
		return nil, fmt.Errorf("max card position: %w", err)
	}
	return maxPos, nil
}

// Siblings returns every card in the list except excludeID, in position order.
func (r *Repo) Siblings(ctx context.Context, listID, excludeID uuid.UUID) ([]domain.Sibling, error) {
	var rows []siblingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, siblingsSQL, listID, excludeID); err != nil {
		return nil, fmt.Errorf("card siblings: %w", err)
	}

	out := make([]domain.Sibling, len(rows))
	for i, row := range rows {
		out[i] = domain.Sibling{ID: row.ID, Position: row.Position, IsArchived: row.IsArchived}
	}
	return out, nil
}

// LabelsByCardIDs returns labels attached to the given cards (batch for DataLoader).
func (r *Repo) LabelsByCardIDs(ctx context.Context, cardIDs []uuid.UUID) ([]LabelWithCardID, error) {
	if len(cardIDs) == 0 {
		return []LabelWithCardID{}, nil
	}

	var rows []labelRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, labelsByCardIDsSQL, cardIDs); err != nil {
		return nil, fmt.Errorf("get labels by card_ids: %w", err)
	}

	out := make([]LabelWithCardID, len(rows))
	for i, row := range rows {
		out[i] = LabelWithCardID{
			CardID: row.CardID,
			Label:  domain.Label{ID: row.ID, BoardID: row.BoardID, Name: row.Name, Color: row.Color},
		}
	}
	return out, nil
}

// MemberIDsByCardIDs returns assignees of the given cards (batch for DataLoader).
func (r *Repo) MemberIDsByCardIDs(ctx context.Context, cardIDs []uuid.UUID) ([]MemberWithCardID, error) {
	if len(cardIDs) == 0 {
		return []MemberWithCardID{}, nil
	}

	var rows []memberRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, membersByCardIDsSQL, cardIDs); err != nil {
		return nil, fmt.Errorf("get members by card_ids: %w", err)
	}

	out := make([]MemberWithCardID, len(rows))
	for i, row := range rows {
		out[i] = MemberWithCardID(row)
	}
	return out, nil
}

// Labels returns the labels attached to one card.
func (r *Repo) Labels(ctx context.Context, cardID uuid.UUID) ([]domain.Label, error) {
	rows, err := r.LabelsByCardIDs(ctx, []uuid.UUID{cardID})
	if err != nil {
		return nil, err
	}

	labels := make([]domain.Label, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	return labels, nil
}

// MemberIDs returns the assignees of one card.
func (r *Repo) MemberIDs(ctx context.Context, cardID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.MemberIDsByCardIDs(ctx, []uuid.UUID{cardID})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.UserID
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Lock takes a row lock on the card and returns it with its location.
func (r *Repo) Lock(ctx context.Context, cardID uuid.UUID) (*domain.CardLocation, error) {
	return r.getLocation(ctx, lockSQL, cardID)
}

// Create inserts a card at the given position.
func (r *Repo) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	id := card.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row cardRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insertSQL,
		id, card.ListID, card.Title, card.Description, card.Position, card.DueDate, card.CoverColor, card.CreatedBy,
	)
	if err != nil {
		return nil, postgres.MapPositionError(err, "card", id)
	}

	c := toDomainCard(row)
	return &c, nil
}

// Update applies a partial update and returns the updated card.
func (r *Repo) Update(ctx context.Context, cardID uuid.UUID, params domain.CardUpdateParams) (*domain.Card, error) {
	set := map[string]any{"updated_at": sq.Expr("now()")}
	if params.Title != nil {
		set["title"] = *params.Title
	}
	if params.Description != nil {
		set["description"] = emptyToNil(*params.Description)
	}
	if params.ClearDue {
		set["due_date"] = nil
	} else if params.DueDate != nil {
		set["due_date"] = *params.DueDate
	}
	if params.DueComplete != nil {
		set["due_complete"] = *params.DueComplete
	}
	if params.CoverColor != nil {
		set["cover_color"] = emptyToNil(*params.CoverColor)
	}

	query, args, err := postgres.Builder.
		Update("cards c").
		SetMap(set).
		Where(sq.Eq{"c.id": cardID}).
		Suffix("RETURNING " + cardColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update card query: %w", err)
	}

	var row cardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}

	c := toDomainCard(row)
	return &c, nil
}

// SetArchived sets or clears the archive flag.
func (r *Repo) SetArchived(ctx context.Context, cardID uuid.UUID, archived bool) (*domain.Card, error) {
	var row cardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, setArchivedSQL, cardID, archived); err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}

	c := toDomainCard(row)
	return &c, nil
}

// Reposition writes new keys for the cards of listID and moves movedID into it.
// ids other than movedID that are no longer in listID are skipped.
func (r *Repo) Reposition(ctx context.Context, listID, movedID uuid.UUID, ids []uuid.UUID, positions []int64) error {
	if len(ids) != len(positions) {
		return fmt.Errorf("reposition cards: %d ids for %d positions", len(ids), len(positions))
	}
	if len(ids) == 0 {
		return nil
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, repositionSQL, listID, ids, positions, movedID); err != nil {
		return postgres.MapPositionError(err, "card", listID)
	}
	return nil
}

// Touch bumps updated_at.
func (r *Repo) Touch(ctx context.Context, cardID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, touchSQL, cardID); err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	return nil
}

// Delete hard-deletes the card with its checklists, comments and join rows.
// Must be called inside a transaction.
func (r *Repo) Delete(ctx context.Context, cardID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if err := postgres.DeleteCardChildren(ctx, q, cardID); err != nil {
		return postgres.MapError(err, "card", cardID)
	}

	tag, err := q.Exec(ctx, deleteSQL, cardID)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}
	return nil
}

// ReplaceLabels sets the card's label set to exactly labelIDs.
func (r *Repo) ReplaceLabels(ctx context.Context, cardID uuid.UUID, labelIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, clearLabelsSQL, cardID); err != nil {
		return postgres.MapError(err, "card_labels", cardID)
	}
	if len(labelIDs) == 0 {
		return nil
	}
	if _, err := q.Exec(ctx, insertLabelsSQL, cardID, labelIDs); err != nil {
		return postgres.MapError(err, "card_labels", cardID)
	}
	return nil
}

// ReplaceMembers sets the card's assignee set to exactly userIDs.
func (r *Repo) ReplaceMembers(ctx context.Context, cardID uuid.UUID, userIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, clearMembersSQL, cardID); err != nil {
		return postgres.MapError(err, "card_members", cardID)
	}
	if len(userIDs) == 0 {
		return nil
	}
	if _, err := q.Exec(ctx, insertMembersSQL, cardID, userIDs); err != nil {
		return postgres.MapError(err, "card_members", cardID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getLocation(ctx context.Context, query string, cardID uuid.UUID) (*domain.CardLocation, error) {
	var row cardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, cardID); err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}

	return &domain.CardLocation{
		Card:     toDomainCard(row),
		BoardID:  row.BoardID,
		ListName: row.ListName,
	}, nil
}

func toDomainCard(row cardRow) domain.Card {
	return domain.Card{
		ID:          row.ID,
		ListID:      row.ListID,
		Title:       row.Title,
		Description: row.Description,
		Position:    row.Position,
		DueDate:     row.DueDate,
		DueComplete: row.DueComplete,
		IsArchived:  row.IsArchived,
		CoverColor:  row.CoverColor,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// emptyToNil maps "" to NULL for clearable text columns.
func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
