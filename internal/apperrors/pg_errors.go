package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the service layer cares about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgInvalidTextRep      = "22P02"
)

// TranslatePgError maps datastore constraint failures onto the application
// error taxonomy so domain services can let them propagate unhandled.
// Non-constraint errors are returned wrapped but untranslated.
func TranslatePgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("duplicate entry (%s): %w", pgErr.ConstraintName, ErrDuplicate)
	case pgForeignKeyViolation:
		return fmt.Errorf("invalid reference (%s): %w", pgErr.ConstraintName, ErrInvalidReference)
	case pgNotNullViolation:
		return fmt.Errorf("required field missing (%s): %w", pgErr.ColumnName, ErrValidation)
	case pgInvalidTextRep:
		return fmt.Errorf("invalid data format: %w", ErrValidation)
	}
	return err
}
