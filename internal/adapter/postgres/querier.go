package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools, so
// repositories run unchanged inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Builder produces $n placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFrom(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// QuerierFromCtx prefers the transaction opened by TxManager.RunInTx and
// falls back to pool otherwise.
func QuerierFromCtx(ctx context.Context, pool Querier) Querier {
	if tx, ok := txFrom(ctx); ok {
		return tx
	}
	return pool
}

// InTx reports whether ctx is inside TxManager.RunInTx.
func InTx(ctx context.Context) bool {
	_, ok := txFrom(ctx)
	return ok
}
