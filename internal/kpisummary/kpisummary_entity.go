package kpisummary

import (
	"time"

	"github.com/google/uuid"
)

const DefaultPeriod = "Annual"

// KpiSummary caches the aggregated output score of one employee for one period.
type KpiSummary struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_kpi_summary_employee_period,priority:1"`
	Period      string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_kpi_summary_employee_period,priority:2"`
	OutputScore float64   `gorm:"not null;default:0"`
	KPICount    int       `gorm:"not null;default:0"`
	ComputedAt  time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (KpiSummary) TableName() string {
	return "kpi_summaries"
}
