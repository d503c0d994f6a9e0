package events

import "time"

const AparLifecycleTopic = "hr.apar.lifecycle.v1"

const EventAparFinalized = "apar_finalized"

type AparFinalizedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	AparID      string    `json:"apar_id"`
	EmployeeID  string    `json:"employee_id"`
	Year        int       `json:"year"`
	FinalScore  float64   `json:"final_score"`
	FinalizedBy string    `json:"finalized_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
