package employee

type UpdateEmployerTypeRequest struct {
	EmployerType string `json:"employer_type" binding:"required,oneof=Field HQ field hq"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	EmployerType string `json:"employer_type,omitempty"`
	Department   string `json:"department,omitempty"`
	Designation  string `json:"designation,omitempty"`
}
