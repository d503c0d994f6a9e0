package kpi

import (
	_ "embed"
	"fmt"
	"math"

	"go-pms/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed templates/kpi_defaults.yaml
var defaultTemplatesYAML []byte

type Template struct {
	Name        string  `yaml:"name" json:"kpi_name"`
	Metric      string  `yaml:"metric" json:"metric"`
	Weightage   float64 `yaml:"weightage" json:"weightage"`
	Target      float64 `yaml:"target" json:"target"`
	Period      string  `yaml:"period,omitempty" json:"period"`
	Description string  `yaml:"description" json:"description"`
}

// Catalog holds the default KPI set of every employer classification.
type Catalog map[domain.EmployerType][]Template

// ParseCatalog decodes a template document and checks that each
// classification's weightages sum to exactly 100.
func ParseCatalog(data []byte) (Catalog, error) {
	var raw map[string][]Template
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode kpi templates: %w", err)
	}

	cat := Catalog{}
	for key, templates := range raw {
		et, err := domain.ParseEmployerType(key)
		if err != nil {
			return nil, fmt.Errorf("kpi templates: %w", err)
		}
		if len(templates) == 0 {
			return nil, fmt.Errorf("kpi templates: %s has no entries", et)
		}

		sum := 0.0
		for i := range templates {
			t := &templates[i]
			if t.Name == "" {
				return nil, fmt.Errorf("kpi templates: %s entry %d has no name", et, i)
			}
			if t.Target < 0 || t.Weightage < 0 || t.Weightage > 100 {
				return nil, fmt.Errorf("kpi templates: %s/%s has out of range target or weightage", et, t.Name)
			}
			if t.Period == "" {
				t.Period = DefaultPeriod
			}
			sum += t.Weightage
		}
		if math.Abs(sum-100) > 1e-9 {
			return nil, fmt.Errorf("kpi templates: %s weightages sum to %v, want 100", et, sum)
		}
		cat[et] = templates
	}
	return cat, nil
}

// DefaultCatalog returns the embedded template set.
func DefaultCatalog() Catalog {
	cat, err := ParseCatalog(defaultTemplatesYAML)
	if err != nil {
		panic(err)
	}
	return cat
}

func (c Catalog) For(et domain.EmployerType) []Template {
	return c[et]
}
