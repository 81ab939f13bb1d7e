package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// classifyError maps driver errors of both supported databases to the
// store's sentinel errors. Unrecognised errors are returned wrapped.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPgError(pgErr)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return classifySQLiteError(liteErr)
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}

// classifyPgError maps a *pgconn.PgError by its SQLSTATE code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	// Class 23 - integrity constraint violations
	case pgerrcode.UniqueViolation:
		return ErrLoginAlreadyExists

	// Class 08 - connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow:
		return fmt.Errorf("%w: %w", ErrDBUnavailable, pgErr)

	// P0002 - raised by functions that expected a row
	case pgerrcode.NoDataFound:
		return ErrNoUserWasFound
	}

	return fmt.Errorf("unexpected DB error: %w", pgErr)
}

func classifySQLiteError(liteErr sqlite3.Error) error {
	switch {
	case liteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
		liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
		return ErrLoginAlreadyExists
	case liteErr.Code == sqlite3.ErrBusy, liteErr.Code == sqlite3.ErrLocked, liteErr.Code == sqlite3.ErrCantOpen:
		return fmt.Errorf("%w: %w", ErrDBUnavailable, liteErr)
	}

	return fmt.Errorf("unexpected DB error: %w", liteErr)
}
