package kpi

import (
	"context"
	"database/sql"

	"go-pms/internal/scoring"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	AssignedTo string
	Period     string
	Status     scoring.Status
}

//go:generate mockgen -source=kpi_repo.go -destination=mock/kpi_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, k *KPI) error
	CreateBatch(ctx context.Context, kpis []KPI) error
	FindByID(ctx context.Context, id string) (*KPI, error)
	FindByIDForUpdate(ctx context.Context, id string) (*KPI, error)
	List(ctx context.Context, f ListFilter) ([]KPI, error)
	FindByAssignee(ctx context.Context, employeeID string) ([]KPI, error)
	FindCompletedByAssignee(ctx context.Context, employeeID string) ([]KPI, error)
	CountDefaults(ctx context.Context, employeeID string) (int64, error)
	UpdateVersioned(ctx context.Context, k *KPI) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, k *KPI) error {
	return r.conn(ctx).Create(k).Error
}

func (r *repository) CreateBatch(ctx context.Context, kpis []KPI) error {
	if len(kpis) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&kpis).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*KPI, error) {
	var k KPI
	if err := r.conn(ctx).First(&k, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &k, nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*KPI, error) {
	var k KPI
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&k, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]KPI, error) {
	q := r.conn(ctx).Model(&KPI{})
	if f.AssignedTo != "" {
		q = q.Where("assigned_to = ?", f.AssignedTo)
	}
	if f.Period != "" {
		q = q.Where("period = ?", f.Period)
	}
	if f.Status != "" {
		q = q.Where("LOWER(status) IN ?", scoring.MatchingSpellings(f.Status))
	}

	var kpis []KPI
	err := q.Order("created_at DESC").Find(&kpis).Error
	return kpis, err
}

func (r *repository) FindByAssignee(ctx context.Context, employeeID string) ([]KPI, error) {
	var kpis []KPI
	err := r.conn(ctx).
		Where("assigned_to = ?", employeeID).
		Order("period, created_at").
		Find(&kpis).Error
	return kpis, err
}

// FindCompletedByAssignee matches every stored spelling of "completed",
// including rows written before status normalisation.
func (r *repository) FindCompletedByAssignee(ctx context.Context, employeeID string) ([]KPI, error) {
	var kpis []KPI
	err := r.conn(ctx).
		Where("assigned_to = ? AND LOWER(status) IN ?", employeeID, scoring.MatchingSpellings(scoring.StatusCompleted)).
		Order("created_at").
		Find(&kpis).Error
	return kpis, err
}

func (r *repository) CountDefaults(ctx context.Context, employeeID string) (int64, error) {
	var n int64
	err := r.conn(ctx).
		Model(&KPI{}).
		Where("assigned_to = ? AND is_default = ?", employeeID, true).
		Count(&n).Error
	return n, err
}

// UpdateVersioned writes every column of k only if the stored version still
// matches k.Version, then bumps it. A lost race yields ErrVersionConflict.
func (r *repository) UpdateVersioned(ctx context.Context, k *KPI) error {
	expected := k.Version
	k.Version = expected + 1

	res := r.conn(ctx).
		Model(&KPI{}).
		Where("id = ? AND version = ?", k.ID, expected).
		Select("*").
		Omit("id", "created_at").
		Updates(k)
	if res.Error != nil {
		k.Version = expected
		return res.Error
	}
	if res.RowsAffected == 0 {
		k.Version = expected
		return ErrVersionConflict
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&KPI{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
