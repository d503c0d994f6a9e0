package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAllActive(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	ListActiveEmployeeIDs(ctx context.Context) ([]string, error)
	UpdateEmployerType(ctx context.Context, id, employerType string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) FindAllActive(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.conn(ctx).
		Where("archived = ?", false).
		Order("full_name ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.conn(ctx).First(&emp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// ListActiveEmployeeIDs returns non-archived employees with the employee role,
// the population bulk analysis runs over.
func (r *repository) ListActiveEmployeeIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.conn(ctx).
		Model(&Employee{}).
		Where("role = ? AND archived = ?", RoleEmployee, false).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) UpdateEmployerType(ctx context.Context, id, employerType string) error {
	res := r.conn(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("employer_type", employerType)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
