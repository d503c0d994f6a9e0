package domain

import (
	"fmt"
	"strings"
)

// EmployerType classifies an employee's workplace and selects the KPI
// template set and formula family used for them.
type EmployerType string

const (
	EmployerField EmployerType = "Field"
	EmployerHQ    EmployerType = "HQ"
)

func ParseEmployerType(raw string) (EmployerType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "field":
		return EmployerField, nil
	case "hq":
		return EmployerHQ, nil
	}
	return "", fmt.Errorf("unknown employer type %q", raw)
}

// EmployerTypeOrDefault resolves an optional classification, falling back
// to Field when unset or unrecognised.
func EmployerTypeOrDefault(raw *string) EmployerType {
	if raw == nil {
		return EmployerField
	}
	t, err := ParseEmployerType(*raw)
	if err != nil {
		return EmployerField
	}
	return t
}
