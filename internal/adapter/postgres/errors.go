package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

// SQLSTATE codes the repositories translate.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

var sentinelByCode = map[string]error{
	codeUniqueViolation:      domain.ErrAlreadyExists,
	codeForeignKeyViolation:  domain.ErrNotFound,
	codeCheckViolation:       domain.ErrValidation,
	codeSerializationFailure: domain.ErrConflict,
	codeDeadlockDetected:     domain.ErrConflict,
}

// MapError wraps err as "<entity> <id>: <cause>", replacing the cause with a
// domain sentinel when one applies. Context cancellation is kept as is so
// callers can tell a timeout from a data problem.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %v: %w", entity, id, classify(err))
}

// MapPositionError is MapError for writes to a position-ordered table:
// a unique violation there means a concurrent writer took the key.
func MapPositionError(err error, entity string, id any) error {
	if pgCode(err) == codeUniqueViolation {
		return fmt.Errorf("%s %v: position taken: %w", entity, id, domain.ErrConflict)
	}
	return MapError(err, entity, id)
}

func classify(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, pgx.ErrNoRows), pgxscan.NotFound(err):
		return domain.ErrNotFound
	}
	if sentinel, ok := sentinelByCode[pgCode(err)]; ok {
		return sentinel
	}
	return err
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isConflict(err error) bool {
	switch pgCode(err) {
	case codeUniqueViolation, codeSerializationFailure, codeDeadlockDetected:
		return true
	}
	return false
}
