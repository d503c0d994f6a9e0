package infra

import (
	_ "embed"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed model.conf
var defaultModel string

//go:embed policy.csv
var DefaultPolicy []byte

// NewEnforcer builds an enforcer from a model file, or from the embedded
// role model when modelPath is empty. Policies are loaded by the rbac service.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if modelPath != "" {
		m, err := model.NewModelFromFile(modelPath)
		if err != nil {
			return nil, err
		}
		return casbin.NewEnforcer(m)
	}

	m, err := model.NewModelFromString(defaultModel)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
