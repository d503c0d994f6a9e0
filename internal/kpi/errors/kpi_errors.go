package kpierrors

import (
	"go-pms/internal/shared/apperror"
	"net/http"
)

var (
	ErrKPINotFound = apperror.New(
		apperror.CodeNotFound,
		"KPI not found",
		http.StatusNotFound,
	)
	ErrInvalidKPIID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid KPI ID",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployerType = apperror.New(
		apperror.CodeInvalidInput,
		"Employer type must be Field or HQ",
		http.StatusBadRequest,
	)
	ErrInvalidTarget = apperror.New(
		apperror.CodeInvalidInput,
		"Target must be zero or greater",
		http.StatusBadRequest,
	)
	ErrInvalidWeightage = apperror.New(
		apperror.CodeInvalidInput,
		"Weightage must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of not_started, in_progress, completed, at_risk",
		http.StatusBadRequest,
	)
	ErrInvalidReviewAction = apperror.New(
		apperror.CodeInvalidInput,
		"Action must be approve or reject",
		http.StatusBadRequest,
	)
	ErrDefaultsAlreadyExist = apperror.New(
		apperror.CodeConflict,
		"Default KPIs already exist for this employee",
		http.StatusConflict,
	)
	ErrPendingUpdateExists = apperror.New(
		apperror.CodeConflict,
		"A pending update already exists for this KPI",
		http.StatusConflict,
	)
	ErrNoPendingUpdate = apperror.New(
		apperror.CodeNotFound,
		"No pending update found for this KPI",
		http.StatusNotFound,
	)
	ErrStaleKPI = apperror.New(
		apperror.CodeConflict,
		"KPI was modified concurrently, reload and retry",
		http.StatusConflict,
	)
	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"Admin access required",
		http.StatusForbidden,
	)
	ErrNotKPIOwner = apperror.New(
		apperror.CodeForbidden,
		"You can only update your own KPIs",
		http.StatusForbidden,
	)
	ErrKPIReadOnly = apperror.New(
		apperror.CodeForbidden,
		"This KPI is read-only and its score can only be updated by the e-Office analysis",
		http.StatusForbidden,
	)
	ErrDefaultKPIImmutable = apperror.New(
		apperror.CodeForbidden,
		"Default KPIs can only be scored by the e-Office analysis",
		http.StatusForbidden,
	)
	ErrDefaultKPIDelete = apperror.New(
		apperror.CodeForbidden,
		"Default KPIs cannot be deleted",
		http.StatusForbidden,
	)
	ErrNotKPICreator = apperror.New(
		apperror.CodeForbidden,
		"Only the admin who created this KPI can delete it",
		http.StatusForbidden,
	)
	ErrKPIForbidden = apperror.New(
		apperror.CodeForbidden,
		"You can only view your own KPIs",
		http.StatusForbidden,
	)
	ErrInvalidQualitativeScore = apperror.New(
		apperror.CodeInvalidInput,
		"Qualitative score must be between 0 and 100",
		http.StatusBadRequest,
	)
)
