package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-pms/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP_AppError(t *testing.T) {
	res := apperror.ToHTTP(apperror.ErrForbidden)

	assert.Equal(t, http.StatusForbidden, res.Status)
	assert.Equal(t, apperror.CodeForbidden, res.Code)
	assert.Nil(t, res.Details)
}

func TestToHTTP_WrappedAppError(t *testing.T) {
	err := fmt.Errorf("update kpi: %w", apperror.ErrConflict)

	res := apperror.ToHTTP(err)

	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, apperror.CodeConflict, res.Code)
}

func TestToHTTP_UnknownErrorIsInternal(t *testing.T) {
	res := apperror.ToHTTP(errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, apperror.CodeInternalError, res.Code)
	assert.Equal(t, apperror.ErrInternal.Message, res.Message)
}

func TestToHTTP_ClientErrorKeepsCause(t *testing.T) {
	err := apperror.Wrap(errors.New("target must be >= 0"), apperror.CodeInvalidInput, "Invalid KPI", http.StatusBadRequest)

	res := apperror.ToHTTP(err)

	assert.Equal(t, "target must be >= 0", res.Details)
}

func TestRequiredAndInvalidField(t *testing.T) {
	assert.Equal(t, "Kpi Name is required", apperror.RequiredField("Kpi Name").Message)
	assert.Equal(t, "Target is invalid", apperror.InvalidField("Target").Message)
	assert.True(t, apperror.Is(apperror.InvalidField("x"), apperror.CodeInvalidInput))
}

func TestWithCause_MatchesSentinel(t *testing.T) {
	cause := errors.New("apar version conflict")
	err := apperror.ErrConflict.WithCause(cause)

	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperror.ErrForbidden)
	assert.Nil(t, apperror.ErrConflict.Err)

	res := apperror.ToHTTP(fmt.Errorf("update apar: %w", err))
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, "apar version conflict", res.Details)
}

func TestWithCause_Chained(t *testing.T) {
	first := apperror.ErrNotFound.WithCause(errors.New("a"))
	second := first.WithCause(errors.New("b"))

	assert.ErrorIs(t, second, apperror.ErrNotFound)
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		EmployeeID string  `json:"employee_id" validate:"required,uuid"`
		Year       int     `json:"year" validate:"min=2000"`
		Score      float64 `json:"reviewer_score" validate:"max=100"`
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})

	tests := []struct {
		name string
		in   payload
		want string
	}{
		{"required", payload{Year: 2025}, "Employee Id is required"},
		{"uuid", payload{EmployeeID: "bob", Year: 2025}, "Employee Id must be a valid id"},
		{"min", payload{EmployeeID: "5b0c8f0e-6a4f-4c43-9f43-5d2b0e1a7c11", Year: 1999}, "Year must be at least 2000"},
		{"max", payload{EmployeeID: "5b0c8f0e-6a4f-4c43-9f43-5d2b0e1a7c11", Year: 2025, Score: 101}, "Reviewer Score must be at most 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperror.MapValidationError(v.Struct(tt.in))
			assert.True(t, apperror.Is(err, apperror.CodeInvalidInput))
			assert.Equal(t, tt.want, apperror.ToHTTP(err).Message)
		})
	}

	assert.Same(t, apperror.ErrInvalidInput, apperror.MapValidationError(errors.New("eof")))
}
