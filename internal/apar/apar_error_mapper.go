package apar

import (
	"errors"

	aparerrors "go-pms/internal/apar/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrVersionConflict is returned by conditional writes that matched no row.
var ErrVersionConflict = errors.New("apar version conflict")

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return aparerrors.ErrAparNotFound
	}
	if errors.Is(err, ErrVersionConflict) {
		return aparerrors.ErrStaleApar.WithCause(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02":
			return aparerrors.ErrInvalidAparID
		case "23514":
			return aparerrors.ErrInvalidReviewerScore
		case "23505":
			return aparerrors.ErrStaleApar
		}
	}

	return err
}

func mapEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return aparerrors.ErrEmployeeNotFound
	}
	return err
}
