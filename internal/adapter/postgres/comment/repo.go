// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/boards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boards-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type commentRow struct {
	ID        uuid.UUID `db:"id"`
	CardID    uuid.UUID `db:"card_id"`
	UserID    uuid.UUID `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Only selected by getWithBoardSQL.
	BoardID uuid.UUID `db:"board_id"`
}

const commentColumns = `cm.id, cm.card_id, cm.user_id, cm.content, cm.created_at, cm.updated_at`

const getWithBoardSQL = `
SELECT ` + commentColumns + `, l.board_id
FROM comments cm
JOIN cards c ON c.id = cm.card_id
JOIN lists l ON l.id = c.list_id
WHERE cm.id = $1`

const listByCardSQL = `
SELECT ` + commentColumns + `
FROM comments cm
WHERE cm.card_id = $1
ORDER BY cm.created_at DESC, cm.id DESC`

const insertSQL = `
INSERT INTO comments AS cm (id, card_id, user_id, content)
VALUES ($1, $2, $3, $4)
RETURNING ` + commentColumns

const updateSQL = `
UPDATE comments cm SET content = $2, updated_at = now()
WHERE cm.id = $1
RETURNING ` + commentColumns

const deleteSQL = `DELETE FROM comments WHERE id = $1`

// GetWithBoard returns a comment and the id of the board it lives on.
func (r *Repo) GetWithBoard(ctx context.Context, commentID uuid.UUID) (*domain.Comment, uuid.UUID, error) {
	var row commentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getWithBoardSQL, commentID); err != nil {
		return nil, uuid.Nil, postgres.MapError(err, "comment", commentID)
	}

	c := toDomainComment(row)
	return &c, row.BoardID, nil
}

// ListByCard returns the card's comments, newest first.
func (r *Repo) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error) {
	var rows []commentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByCardSQL, cardID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = toDomainComment(row)
	}
	return comments, nil
}

// Create inserts a comment.
func (r *Repo) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	id := comment.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row commentRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insertSQL, id, comment.CardID, comment.UserID, comment.Content)
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}

	c := toDomainComment(row)
	return &c, nil
}

// UpdateContent replaces the comment text.
func (r *Repo) UpdateContent(ctx context.Context, commentID uuid.UUID, content string) (*domain.Comment, error) {
	var row commentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, updateSQL, commentID, content); err != nil {
		return nil, postgres.MapError(err, "comment", commentID)
	}

	c := toDomainComment(row)
	return &c, nil
}

// Delete removes a comment.
func (r *Repo) Delete(ctx context.Context, commentID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, commentID)
	if err != nil {
		return postgres.MapError(err, "comment", commentID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}
	return nil
}

func toDomainComment(row commentRow) domain.Comment {
	return domain.Comment{
		ID:        row.ID,
		CardID:    row.CardID,
		UserID:    row.UserID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
