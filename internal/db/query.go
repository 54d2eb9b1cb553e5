package db

import (
	"database/sql"
	"errors"

	"medsales/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry is the server error for a violated unique index.
const mysqlDuplicateEntry = 1062

// Translate maps a driver error onto the domain taxonomy. No rows becomes a
// NotFoundError for the given resource, a duplicate-key violation becomes a
// ConflictError, anything else is wrapped as a StoreError.
func Translate(resource string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return domain.ConflictError{Resource: resource, Msg: "duplicate entry", Err: err}
	}
	return domain.StoreError{Op: resource, Err: err}
}
