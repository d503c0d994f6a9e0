package employeeerrors

import (
	"go-pms/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
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
	ErrEmployeeArchived = apperror.New(
		apperror.CodeInvalidState,
		"Employee is archived",
		http.StatusConflict,
	)
)
