// Package settings reads the host application's key/value settings table.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/boards-backend/internal/adapter/postgres"
)

// Repo reads settings backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSQL = `SELECT value FROM settings WHERE key = $1`

// Get returns the value stored under key, or "" when the key is absent.
func (r *Repo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}
