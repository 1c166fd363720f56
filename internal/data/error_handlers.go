package data

import (
	"errors"
	"fmt"

	"evaluationservice/internal/errdefs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	classConnectionException = "08"
)

func pgErrorCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return true
	}
	code, ok := pgErrorCode(err)
	return ok && len(code) == 5 && code[:2] == classConnectionException
}

// handleError maps driver errors onto errdefs kinds. notFound is returned
// for pgx.ErrNoRows and foreign key violations.
func handleError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return notFound
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %v", errdefs.ErrUnavailable, err)
	}
	if code, ok := pgErrorCode(err); ok {
		switch code {
		case codeUniqueViolation:
			return errdefs.ErrAlreadyExists
		case codeForeignKeyViolation:
			return notFound
		case codeCheckViolation:
			return fmt.Errorf("%w: %v", errdefs.ErrInvalidArgument, err)
		case codeSerializationFailure, codeDeadlockDetected:
			return errdefs.ErrVersionConflict
		}
	}
	return fmt.Errorf("repository error: %w", err)
}
