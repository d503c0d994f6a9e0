package apar

import (
	"time"

	"go-pms/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SelfAppraisal struct {
	Achievements string `json:"achievements"`
	Challenges   string `json:"challenges"`
	Innovations  string `json:"innovations"`
}

// Apar is one annual appraisal cycle of one employee. EmployeeID is the
// canonical owner reference; LegacyUserID is the alias older rows were
// written with and is still matched until NormalizeLegacyRefs has run.
type Apar struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   *uuid.UUID `gorm:"type:uuid;index:idx_apars_employee_year"`
	LegacyUserID *uuid.UUID `gorm:"column:user_id;type:uuid;index:idx_apars_user_id"`
	Year         int        `gorm:"not null;index:idx_apars_employee_year"`
	Period       string     `gorm:"type:varchar(30)"`

	SelfAppraisal    datatypes.JSONType[SelfAppraisal] `gorm:"type:jsonb;not null;default:'{}'"`
	ReviewerID       *uuid.UUID                        `gorm:"type:uuid"`
	ReviewerComments string                            `gorm:"type:text"`
	ReviewerScore    float64                           `gorm:"not null;default:0;check:chk_apars_reviewer_score,reviewer_score >= 0 AND reviewer_score <= 100"`
	FinalScore       float64                           `gorm:"not null;default:0"`

	Status    domain.AparStatus `gorm:"type:varchar(20);not null;default:'draft';index:idx_apars_status"`
	CreatedBy uuid.UUID         `gorm:"type:uuid;not null"`
	Version   int               `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_apars_deleted_at"`
}

func (Apar) TableName() string { return "apars" }

// OwnerID is the employee the appraisal belongs to, preferring the
// canonical reference.
func (a *Apar) OwnerID() string {
	if a.EmployeeID != nil {
		return a.EmployeeID.String()
	}
	if a.LegacyUserID != nil {
		return a.LegacyUserID.String()
	}
	return ""
}

// OwnerIDs lists every reference that identifies the owner.
func (a *Apar) OwnerIDs() []string {
	ids := make([]string, 0, 2)
	if a.EmployeeID != nil {
		ids = append(ids, a.EmployeeID.String())
	}
	if a.LegacyUserID != nil && (a.EmployeeID == nil || *a.LegacyUserID != *a.EmployeeID) {
		ids = append(ids, a.LegacyUserID.String())
	}
	return ids
}
