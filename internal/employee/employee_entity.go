package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string    `gorm:"type:varchar(150);not null"`
	Email        string    `gorm:"type:varchar(150);uniqueIndex:uq_employee_email"`
	Role         string    `gorm:"type:varchar(20);not null;default:'employee';index"`
	EmployerType *string   `gorm:"type:varchar(10)"`
	Department   string    `gorm:"type:varchar(150)"`
	Designation  string    `gorm:"type:varchar(150)"`
	Archived     bool      `gorm:"not null;default:false"`
	ArchivedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
