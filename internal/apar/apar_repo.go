package apar

import (
	"context"
	"database/sql"

	"go-pms/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	// EmployeeID matches either owner reference.
	EmployeeID string
	Status     domain.AparStatus
	Year       int
}

//go:generate mockgen -source=apar_repo.go -destination=mock/apar_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Apar) error
	FindByID(ctx context.Context, id string) (*Apar, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Apar, error)
	FindByEmployeeYearForUpdate(ctx context.Context, employeeID string, year int) (*Apar, error)
	List(ctx context.Context, f ListFilter) ([]Apar, error)
	UpdateVersioned(ctx context.Context, a *Apar) error
	LockEmployee(ctx context.Context, employeeID string) error
	RetireOthers(ctx context.Context, ownerIDs []string, keepID string, hard bool) (int64, error)
	NormalizeLegacyRefs(ctx context.Context) (int64, error)
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

func (r *repository) Create(ctx context.Context, a *Apar) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Apar, error) {
	var a Apar
	if err := r.conn(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Apar, error) {
	var a Apar
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployeeYearForUpdate(ctx context.Context, employeeID string, year int) (*Apar, error) {
	var a Apar
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("(employee_id = ? OR user_id = ?) AND year = ?", employeeID, employeeID, year).
		Order("created_at DESC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]Apar, error) {
	q := r.conn(ctx).Model(&Apar{})
	if f.EmployeeID != "" {
		q = q.Where("(employee_id = ? OR user_id = ?)", f.EmployeeID, f.EmployeeID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Year != 0 {
		q = q.Where("year = ?", f.Year)
	}

	var apars []Apar
	err := q.Order("created_at DESC").Find(&apars).Error
	return apars, err
}

// UpdateVersioned writes every column of a only if the stored version still
// matches a.Version, then bumps it. A lost race yields ErrVersionConflict.
func (r *repository) UpdateVersioned(ctx context.Context, a *Apar) error {
	expected := a.Version
	a.Version = expected + 1

	res := r.conn(ctx).
		Model(&Apar{}).
		Where("id = ? AND version = ?", a.ID, expected).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(a)
	if res.Error != nil {
		a.Version = expected
		return res.Error
	}
	if res.RowsAffected == 0 {
		a.Version = expected
		return ErrVersionConflict
	}
	return nil
}

// LockEmployee takes a transaction-scoped advisory lock on the employee so
// APAR creation and finalization for the same person are serialised.
func (r *repository) LockEmployee(ctx context.Context, employeeID string) error {
	return r.conn(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "apar:"+employeeID).Error
}

// RetireOthers removes every APAR owned by any of ownerIDs except keepID.
// Soft delete unless hard is set.
func (r *repository) RetireOthers(ctx context.Context, ownerIDs []string, keepID string, hard bool) (int64, error) {
	if len(ownerIDs) == 0 {
		return 0, nil
	}
	q := r.conn(ctx)
	if hard {
		q = q.Unscoped()
	}
	res := q.
		Where("id <> ?", keepID).
		Where("(employee_id IN ? OR user_id IN ?)", ownerIDs, ownerIDs).
		Delete(&Apar{})
	return res.RowsAffected, res.Error
}

// NormalizeLegacyRefs copies user_id into employee_id wherever the
// canonical reference is still empty.
func (r *repository) NormalizeLegacyRefs(ctx context.Context) (int64, error) {
	res := r.conn(ctx).
		Unscoped().
		Model(&Apar{}).
		Where("employee_id IS NULL AND user_id IS NOT NULL").
		Update("employee_id", gorm.Expr("user_id"))
	return res.RowsAffected, res.Error
}
