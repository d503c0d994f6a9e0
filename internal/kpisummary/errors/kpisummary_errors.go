package kpisummaryerrors

import (
	"net/http"

	"go-pms/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrScoreForbidden = apperror.New(
		apperror.CodeForbidden,
		"You can only view your own score",
		http.StatusForbidden,
	)
)
