package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type beginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// TxManager runs callbacks inside a transaction carried in the context;
// repositories pick it up through QuerierFromCtx.
type TxManager struct {
	pool beginner
	opts pgx.TxOptions
}

// NewTxManager creates a TxManager using Read Committed transactions.
func NewTxManager(pool beginner) *TxManager {
	return &TxManager{pool: pool, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

// RunInTx commits when fn returns nil and rolls back otherwise, including on
// panic (which is re-raised). When ctx already carries a transaction fn joins
// it, and the outermost RunInTx decides the outcome.
//
// Serialization failures and deadlocks at commit surface as domain.ErrConflict.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, m.opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	// Rollback must still reach the server when ctx is already cancelled.
	cleanupCtx := context.WithoutCancel(ctx)
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(cleanupCtx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(cleanupCtx); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if isConflict(err) {
			return MapError(err, "transaction", "commit")
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
