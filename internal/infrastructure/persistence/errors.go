package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/oksasatya/starwars-blog-api/internal/domain/repository"
)

// PostgreSQL error codes.
const (
	pgUniqueViolationCode     = "23505"
	pgForeignKeyViolationCode = "23503"
)

// classify maps driver errors onto the repository sentinels so callers never
// depend on a specific backend.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolationCode:
			return fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolationCode:
			return fmt.Errorf("%w: %s", repository.ErrForeignKey, pgErr.ConstraintName)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %s", repository.ErrDuplicate, liteErr.Error())
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %s", repository.ErrForeignKey, liteErr.Error())
		case sqlite3.SQLITE_CONSTRAINT:
			// extended result codes disabled
			msg := liteErr.Error()
			if strings.Contains(msg, "UNIQUE constraint failed") {
				return fmt.Errorf("%w: %s", repository.ErrDuplicate, msg)
			}
			if strings.Contains(msg, "FOREIGN KEY constraint failed") {
				return fmt.Errorf("%w: %s", repository.ErrForeignKey, msg)
			}
		}
	}
	return err
}

// affected turns a zero-row write into repository.ErrNotFound.
func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
