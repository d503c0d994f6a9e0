package aparerrors

import (
	"go-pms/internal/shared/apperror"
	"net/http"
)

var (
	ErrAparNotFound = apperror.New(
		apperror.CodeNotFound,
		"APAR not found",
		http.StatusNotFound,
	)
	ErrInvalidAparID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid APAR ID",
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
	ErrInvalidReviewerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid reviewer ID",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Year must be between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrInvalidAparStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of draft, submitted, reviewed, finalized",
		http.StatusBadRequest,
	)
	ErrInvalidReviewerScore = apperror.New(
		apperror.CodeInvalidInput,
		"Reviewer score must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrEmptyUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"No APAR fields to update",
		http.StatusBadRequest,
	)
	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"Admin access required",
		http.StatusForbidden,
	)
	ErrAparForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to edit this APAR",
		http.StatusForbidden,
	)
	ErrAparLocked = apperror.New(
		apperror.CodeForbidden,
		"Only reviewers can modify a submitted APAR",
		http.StatusForbidden,
	)
	ErrAparReadForbidden = apperror.New(
		apperror.CodeForbidden,
		"You can only view your own APARs",
		http.StatusForbidden,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"APAR status can only move forward",
		http.StatusConflict,
	)
	ErrStaleApar = apperror.New(
		apperror.CodeConflict,
		"APAR was modified concurrently, reload and retry",
		http.StatusConflict,
	)
)
