package kpisummary

import "time"

const (
	SourceCache      = "cache"
	SourceSummary    = "summary"
	SourceRecomputed = "recomputed"
)

type ScoreQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Period     string `form:"period" binding:"omitempty,max=30"`
}

type BreakdownItem struct {
	KPIID     string  `json:"kpi_id"`
	KPIName   string  `json:"kpi_name"`
	Score     float64 `json:"score"`
	Weightage float64 `json:"weightage"`
}

type ScoreResponse struct {
	EmployeeID       string          `json:"employee_id"`
	Period           string          `json:"period"`
	OutputScore      float64         `json:"output_score"`
	BehaviouralScore float64         `json:"behavioural_score"`
	TotalScore       float64         `json:"total_score"`
	KPICount         int             `json:"kpi_count"`
	Breakdown        []BreakdownItem `json:"breakdown"`
	Analyzed         bool            `json:"analyzed"`
	Source           string          `json:"source"`
	ComputedAt       *time.Time      `json:"computed_at,omitempty"`
}

type SummaryResponse struct {
	EmployeeID  string    `json:"employee_id"`
	Period      string    `json:"period"`
	OutputScore float64   `json:"output_score"`
	KPICount    int       `json:"kpi_count"`
	ComputedAt  time.Time `json:"computed_at"`
}
