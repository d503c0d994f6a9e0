package kpi

import (
	"time"

	"go-pms/internal/scoring"

	"github.com/google/uuid"
)

const (
	SourceEOffice = "e-office"
	SourceManual  = "manual"

	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"

	DefaultPeriod    = "Annual"
	DefaultWeightage = 10.0
)

// PendingUpdate is an employee proposal waiting for an admin decision.
type PendingUpdate struct {
	AchievedValue float64        `json:"achievedValue"`
	Status        scoring.Status `json:"status"`
	ProgressNotes string         `json:"progressNotes,omitempty"`
	SubmittedAt   time.Time      `json:"submittedAt"`
}

type KPI struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	KPIName            string         `gorm:"column:kpi_name;type:varchar(200);not null;uniqueIndex:uq_kpis_default_name,priority:2,where:is_default"`
	Title              string         `gorm:"type:varchar(200)"`
	Metric             string         `gorm:"type:varchar(50);not null"`
	Description        string         `gorm:"type:text"`
	Target             float64        `gorm:"not null;default:0;check:chk_kpis_target,target >= 0"`
	Weightage          float64        `gorm:"not null;default:10;check:chk_kpis_weightage,weightage >= 0 AND weightage <= 100"`
	AchievedValue      float64        `gorm:"not null;default:0"`
	Progress           float64        `gorm:"not null;default:0"`
	Score              float64        `gorm:"not null;default:0"`
	Status             scoring.Status `gorm:"type:varchar(20);not null;default:'not_started';index"`
	Period             string         `gorm:"type:varchar(30);not null;default:'Annual';uniqueIndex:uq_kpis_default_name,priority:3,where:is_default"`
	EmployerType       *string        `gorm:"type:varchar(10)"`
	IsDefault          bool           `gorm:"not null;default:false;index"`
	ReadOnly           bool           `gorm:"not null;default:false"`
	Source             string         `gorm:"type:varchar(20);not null;default:'manual'"`
	ProgressNotes      string         `gorm:"type:text"`
	SupervisorComments string         `gorm:"type:text"`
	Remarks            string         `gorm:"type:text"`
	QualitativeScore   *float64
	EofficeScore       float64    `gorm:"not null;default:0"`
	VerificationStatus string     `gorm:"type:varchar(20);not null;default:'pending'"`
	VerifiedBy         *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt         *time.Time
	AssignedTo         uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uq_kpis_default_name,priority:1,where:is_default"`
	AssignedBy         uuid.UUID      `gorm:"type:uuid;not null"`
	PendingUpdate      *PendingUpdate `gorm:"type:jsonb;serializer:json"`
	LastUpdated        *time.Time
	Version            int `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (KPI) TableName() string {
	return "kpis"
}

// Recompute derives progress and score from achieved value, target and
// weightage. Call it after any change to those three fields.
func (k *KPI) Recompute() {
	r := scoring.Evaluate(k.AchievedValue, k.Target, k.Weightage)
	k.Progress = r.Progress
	k.Score = r.Score
}

func (k *KPI) touch(now time.Time) {
	k.LastUpdated = &now
}
