package kpi

import (
	"time"

	"go-pms/internal/kpisummary"
)

type CreateKPIRequest struct {
	EmployeeID   string   `json:"employee_id" binding:"required,uuid"`
	KPIName      string   `json:"kpi_name" binding:"required,max=200"`
	Title        string   `json:"title" binding:"omitempty,max=200"`
	Metric       string   `json:"metric" binding:"required,max=50"`
	Description  string   `json:"description"`
	Target       *float64 `json:"target" binding:"required"`
	Weightage    *float64 `json:"weightage"`
	Period       string   `json:"period" binding:"omitempty,max=30"`
	EmployerType string   `json:"employer_type" binding:"omitempty,oneof=Field HQ field hq"`
	// ReadOnly defaults to true. A false value lets the assignee propose
	// achievement updates for admin review.
	ReadOnly *bool `json:"read_only"`
}

// UpdateKPIRequest is the admin metadata edit. Scoring fields only change
// through analysis or an approved proposal.
type UpdateKPIRequest struct {
	Status             *string `json:"status"`
	ProgressNotes      *string `json:"progress_notes"`
	SupervisorComments *string `json:"supervisor_comments"`
	Remarks            *string `json:"remarks"`
	ReadOnly           *bool   `json:"read_only"`
}

type ProposeUpdateRequest struct {
	AchievedValue *float64 `json:"achieved_value" binding:"required,gte=0"`
	Status        string   `json:"status"`
	ProgressNotes string   `json:"progress_notes"`
}

const (
	ReviewApprove = "approve"
	ReviewReject  = "reject"
)

type ReviewRequest struct {
	Action string `json:"action" binding:"required"`
}

type QualitativeRequest struct {
	QualitativeScore   *float64 `json:"qualitative_score"`
	SupervisorComments *string  `json:"supervisor_comments"`
}

type SeedDefaultsRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required"`
	EmployerType string `json:"employer_type" binding:"required"`
	Period       string `json:"period" binding:"omitempty,max=30"`
}

type ListQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Period     string `form:"period"`
	Status     string `form:"status"`
}

type PendingUpdateResponse struct {
	AchievedValue float64   `json:"achieved_value"`
	Status        string    `json:"status"`
	ProgressNotes string    `json:"progress_notes,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

type KPIResponse struct {
	ID                 string                 `json:"id"`
	KPIName            string                 `json:"kpi_name"`
	Title              string                 `json:"title,omitempty"`
	Metric             string                 `json:"metric"`
	Description        string                 `json:"description,omitempty"`
	Target             float64                `json:"target"`
	Weightage          float64                `json:"weightage"`
	AchievedValue      float64                `json:"achieved_value"`
	Progress           float64                `json:"progress"`
	Score              float64                `json:"score"`
	Status             string                 `json:"status"`
	Period             string                 `json:"period"`
	EmployerType       string                 `json:"employer_type,omitempty"`
	IsDefault          bool                   `json:"is_default"`
	ReadOnly           bool                   `json:"read_only"`
	Source             string                 `json:"source"`
	ProgressNotes      string                 `json:"progress_notes,omitempty"`
	SupervisorComments string                 `json:"supervisor_comments,omitempty"`
	Remarks            string                 `json:"remarks,omitempty"`
	QualitativeScore   *float64               `json:"qualitative_score,omitempty"`
	EofficeScore       float64                `json:"eoffice_score"`
	VerificationStatus string                 `json:"verification_status"`
	VerifiedBy         string                 `json:"verified_by,omitempty"`
	VerifiedAt         *time.Time             `json:"verified_at,omitempty"`
	AssignedTo         string                 `json:"assigned_to"`
	AssignedBy         string                 `json:"assigned_by"`
	PendingUpdate      *PendingUpdateResponse `json:"pending_update,omitempty"`
	LastUpdated        *time.Time             `json:"last_updated,omitempty"`
	Version            int                    `json:"version"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

type AnalyzeRequest struct {
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
	All        bool   `json:"all"`
}

// EmployeeAnalysis is the outcome of analysing one employee. Error is set
// when the employee failed; the rest of the batch still runs.
type EmployeeAnalysis struct {
	EmployeeID   string                       `json:"employee_id"`
	EmployeeName string                       `json:"employee_name,omitempty"`
	Department   string                       `json:"department,omitempty"`
	EmployerType string                       `json:"employer_type,omitempty"`
	HasData      bool                         `json:"has_data"`
	KPICount     int                          `json:"kpi_count"`
	TotalScore   float64                      `json:"total_score"`
	OutputScore  float64                      `json:"output_score"`
	Summaries    []kpisummary.SummaryResponse `json:"summaries,omitempty"`
	Error        string                       `json:"error,omitempty"`
}

type AnalysisResponse struct {
	AnalyzedCount int                `json:"analyzed_count"`
	Results       []EmployeeAnalysis `json:"results"`
	Failures      []EmployeeAnalysis `json:"failures,omitempty"`
}

type AnalysisQueuedResponse struct {
	RequestID  string `json:"request_id"`
	EmployeeID string `json:"employee_id,omitempty"`
	All        bool   `json:"all"`
	Status     string `json:"status"`
}
