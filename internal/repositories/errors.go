package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "gearguard/pkg/errors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

// mapPgError turns driver errors into the application taxonomy. entity names the
// record in NotFound messages.
func mapPgError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(entity)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConflictError("%s already exists (%s)", entity, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError(fmt.Sprintf("referenced record for %s (%s)", entity, pgErr.ConstraintName))
		case pgInvalidTextRepr:
			return apperrors.NewValidationError("invalid value in %s query", entity)
		}
	}
	return err
}
