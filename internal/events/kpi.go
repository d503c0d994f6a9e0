package events

import "time"

const (
	KPILifecycleTopic         = "hr.kpi.lifecycle.v1"
	KPIAnalysisRequestedTopic = "hr.kpi.analysis.requested.v1"
)

const (
	EventKPIUpdateReviewed    = "kpi_update_reviewed"
	EventKPIAnalysisRequested = "kpi_analysis_requested"
	EventKPIAnalysisCompleted = "kpi_analysis_completed"
	EventKPIDefaultsSeeded    = "kpi_defaults_seeded"
)

type KPIUpdateReviewedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	KPIID         string    `json:"kpi_id"`
	EmployeeID    string    `json:"employee_id"`
	Action        string    `json:"action"`
	ReviewedBy    string    `json:"reviewed_by"`
	AchievedValue float64   `json:"achieved_value"`
	Score         float64   `json:"score"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type KPIDefaultsSeededEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployerType string    `json:"employer_type"`
	Count        int       `json:"count"`
	SeededBy     string    `json:"seeded_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// KPIAnalysisRequestedEvent asks the consumer to run bulk analysis. An empty
// EmployeeID means every active employee.
type KPIAnalysisRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	EmployeeID  string    `json:"employee_id,omitempty"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type KPIAnalysisCompletedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Period     string    `json:"period"`
	KPICount   int       `json:"kpi_count"`
	TotalScore float64   `json:"total_score"`
	OccurredAt time.Time `json:"occurred_at"`
}
