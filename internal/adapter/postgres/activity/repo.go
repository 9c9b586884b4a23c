// Package activity implements the Activity repository using PostgreSQL.
// It provides append-only writes and a keyset-paginated board feed.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/boards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boards-backend/internal/domain"
)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type activityRow struct {
	ID         uuid.UUID `db:"id"`
	BoardID    uuid.UUID `db:"board_id"`
	UserID     uuid.UUID `db:"user_id"`
	Action     string    `db:"action"`
	TargetType string    `db:"target_type"`
	TargetID   uuid.UUID `db:"target_id"`
	Details    []byte    `db:"details"`
	CreatedAt  time.Time `db:"created_at"`
}

const activityColumns = `id, board_id, user_id, action, target_type, target_id, details, created_at`

const insertSQL = `
INSERT INTO activities (id, board_id, user_id, action, target_type, target_id, details)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + activityColumns

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new activity record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	if !a.Action.IsValid() {
		return domain.Activity{}, fmt.Errorf("activity action %q: %w", a.Action, domain.ErrValidation)
	}
	if !a.TargetType.IsValid() {
		return domain.Activity{}, fmt.Errorf("activity target_type %q: %w", a.TargetType, domain.ErrValidation)
	}

	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	details := a.Details
	if details == nil {
		details = map[string]any{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("activity marshal details: %w", err)
	}

	var row activityRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insertSQL,
		id, a.BoardID, a.UserID, string(a.Action), string(a.TargetType), a.TargetID, detailsJSON,
	)
	if err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", id)
	}

	return toDomainActivity(row)
}

// Log records an activity without returning it.
// Called inside the transaction of the mutation it describes.
func (r *Repo) Log(ctx context.Context, a domain.Activity) error {
	_, err := r.Create(ctx, a)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByBoard returns up to limit activities of the board, newest first,
// strictly older than before when it is set.
func (r *Repo) ListByBoard(ctx context.Context, boardID uuid.UUID, before *domain.ActivityCursor, limit int) ([]domain.Activity, error) {
	qb := postgres.Builder.
		Select(activityColumns).
		From("activities").
		Where(sq.Eq{"board_id": boardID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	if before != nil {
		qb = qb.Where(sq.Expr("(created_at, id) < (?, ?)", before.CreatedAt, before.ID))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build activity feed query: %w", err)
	}

	var rows []activityRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	out := make([]domain.Activity, len(rows))
	for i, row := range rows {
		a, err := toDomainActivity(row)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

func toDomainActivity(row activityRow) (domain.Activity, error) {
	a := domain.Activity{
		ID:         row.ID,
		BoardID:    row.BoardID,
		UserID:     row.UserID,
		Action:     domain.ActivityAction(row.Action),
		TargetType: domain.TargetType(row.TargetType),
		TargetID:   row.TargetID,
		CreatedAt:  row.CreatedAt,
		Details:    map[string]any{},
	}

	if len(row.Details) > 0 {
		if err := json.Unmarshal(row.Details, &a.Details); err != nil {
			return domain.Activity{}, fmt.Errorf("activity %s unmarshal details: %w", row.ID, err)
		}
	}
	return a, nil
}
