package apar

import (
	"time"

	"go-pms/internal/domain"
)

type CreateAparRequest struct {
	// EmployeeID defaults to the caller.
	EmployeeID       string         `json:"employee_id" binding:"omitempty,uuid"`
	Year             int            `json:"year" binding:"required"`
	Period           string         `json:"period" binding:"omitempty,max=30"`
	SelfAppraisal    *SelfAppraisal `json:"self_appraisal"`
	ReviewerID       *string        `json:"reviewer_id" binding:"omitempty,uuid"`
	ReviewerComments *string        `json:"reviewer_comments"`
	ReviewerScore    *float64       `json:"reviewer_score"`
	Status           string         `json:"status"`
}

// UpdateAparRequest carries only the fields the client wants to change.
// Version, when sent, must match the stored version.
type UpdateAparRequest struct {
	SelfAppraisal    *SelfAppraisal `json:"self_appraisal"`
	ReviewerID       *string        `json:"reviewer_id" binding:"omitempty,uuid"`
	ReviewerComments *string        `json:"reviewer_comments"`
	ReviewerScore    *float64       `json:"reviewer_score"`
	Status           *string        `json:"status"`
	Override         bool           `json:"override"`
	Version          *int           `json:"version"`
}

// Fields lists the APAR attributes the request writes.
func (r UpdateAparRequest) Fields() []domain.AparField {
	var fields []domain.AparField
	if r.SelfAppraisal != nil {
		fields = append(fields, domain.AparFieldSelfAppraisal)
	}
	if r.ReviewerID != nil {
		fields = append(fields, domain.AparFieldReviewer)
	}
	if r.ReviewerComments != nil {
		fields = append(fields, domain.AparFieldReviewerComments)
	}
	if r.ReviewerScore != nil {
		fields = append(fields, domain.AparFieldReviewerScore)
	}
	if r.Status != nil {
		fields = append(fields, domain.AparFieldStatus)
	}
	return fields
}

type ListQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status"`
	Year       int    `form:"year"`
}

type AnalyzeAparRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year"`
}

type AparResponse struct {
	ID               string        `json:"id"`
	EmployeeID       string        `json:"employee_id"`
	Year             int           `json:"year"`
	Period           string        `json:"period,omitempty"`
	SelfAppraisal    SelfAppraisal `json:"self_appraisal"`
	ReviewerID       string        `json:"reviewer_id,omitempty"`
	ReviewerComments string        `json:"reviewer_comments,omitempty"`
	ReviewerScore    float64       `json:"reviewer_score"`
	FinalScore       float64       `json:"final_score"`
	Status           string        `json:"status"`
	Version          int           `json:"version"`
	RetiredCount     int64         `json:"retired_count,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type AnalyzeAparResponse struct {
	HasData           bool          `json:"has_data"`
	Message           string        `json:"message"`
	KPIScore          float64       `json:"kpi_score"`
	ConvertedKPIScore float64       `json:"converted_kpi_score"`
	ReviewerScore     float64       `json:"reviewer_score"`
	FinalScore        float64       `json:"final_score"`
	PerformanceLevel  string        `json:"performance_level,omitempty"`
	Apar              *AparResponse `json:"apar,omitempty"`
}
