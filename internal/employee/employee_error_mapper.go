package employee

import (
	"database/sql"
	"errors"

	employeeerrors "go-pms/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation   = "23505"
	pgInvalidTextFormat = "22P02"
)

// mapRepositoryError turns driver and gorm failures into employee errors.
// Anything unrecognised is returned unchanged and surfaces as a 500.
func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, sql.ErrNoRows):
		return employeeerrors.ErrEmployeeNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == "uq_employee_email":
		return employeeerrors.ErrEmployeeAlreadyExists
	case pgErr.Code == pgInvalidTextFormat:
		return employeeerrors.ErrInvalidEmployeeID
	}
	return err
}
