package kpi

import (
	"errors"

	kpierrors "go-pms/internal/kpi/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrVersionConflict is returned by conditional writes that matched no row.
var ErrVersionConflict = errors.New("kpi version conflict")

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kpierrors.ErrKPINotFound
	}
	if errors.Is(err, ErrVersionConflict) {
		return kpierrors.ErrStaleKPI.WithCause(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_kpis_default_name" {
				return kpierrors.ErrDefaultsAlreadyExist
			}
			return kpierrors.ErrStaleKPI
		case "22P02":
			return kpierrors.ErrInvalidKPIID
		case "23514":
			if pgErr.ConstraintName == "chk_kpis_target" {
				return kpierrors.ErrInvalidTarget
			}
			return kpierrors.ErrInvalidWeightage
		}
	}

	return err
}

func mapEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kpierrors.ErrEmployeeNotFound
	}
	return err
}
