package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrOverlap is returned when the exclusion constraint rejects a booking whose
// dates overlap an existing active booking for the same room. It is the final
// arbiter behind the in-transaction availability pre-check.
var ErrOverlap = errors.New("booking dates overlap an existing active booking")

// ErrDuplicate is returned when a unique index rejects a row, e.g. an already
// taken room number.
var ErrDuplicate = errors.New("duplicate value for unique column")

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// translatePgError maps postgres constraint violations onto repository
// sentinels so services never have to inspect driver error codes.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation:
			return ErrOverlap
		case pgUniqueViolation:
			return ErrDuplicate
		}
	}
	return err
}
