package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// formatFieldName turns employee_id into "Employee Id".
func formatFieldName(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError reports the first failed binding rule as an
// INVALID_INPUT error naming the field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return ErrInvalidInput
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "uuid", "uuid4":
		return New(CodeInvalidInput, fmt.Sprintf("%s must be a valid id", field), http.StatusBadRequest)
	case "min", "gte":
		return New(CodeInvalidInput, fmt.Sprintf("%s must be at least %s", field, e.Param()), http.StatusBadRequest)
	case "max", "lte":
		return New(CodeInvalidInput, fmt.Sprintf("%s must be at most %s", field, e.Param()), http.StatusBadRequest)
	case "oneof":
		return New(CodeInvalidInput, fmt.Sprintf("%s must be one of: %s", field, e.Param()), http.StatusBadRequest)
	default:
		return InvalidField(field)
	}
}
