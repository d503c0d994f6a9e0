package kpisummary

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=kpisummary_repo.go -destination=mock/kpisummary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, s *KpiSummary) error
	FindByEmployeePeriod(ctx context.Context, employeeID, period string) (*KpiSummary, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

// Upsert keeps exactly one row per (employee, period).
func (r *repository) Upsert(ctx context.Context, s *KpiSummary) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "period"}},
			DoUpdates: clause.AssignmentColumns([]string{"output_score", "kpi_count", "computed_at", "updated_at"}),
		}).
		Create(s).Error
}

// FindByEmployeePeriod returns nil, nil when no summary exists yet.
func (r *repository) FindByEmployeePeriod(ctx context.Context, employeeID, period string) (*KpiSummary, error) {
	var s KpiSummary
	err := r.conn(ctx).
		Where("employee_id = ? AND period = ?", employeeID, period).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
