// Package postgresql implements the record store repositories over pgx.
// Uniqueness invariants (one payroll record per employee-period, one
// attendance record per employee-day, one email per employee) are enforced
// by database constraints and surfaced as domain sentinel errors.
package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
