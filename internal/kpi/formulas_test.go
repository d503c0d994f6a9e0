package kpi_test

import (
	"testing"

	"go-pms/internal/domain"
	"go-pms/internal/kpi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lowSource answers every measurement with the bottom of its range.
type lowSource struct{}

func (lowSource) Int(_ string, min, _ int) int           { return min }
func (lowSource) Float(_ string, min, _ float64) float64 { return min }

func TestDefaultFormulas_CoverEveryTemplate(t *testing.T) {
	formulas := kpi.DefaultFormulas()
	catalog := kpi.DefaultCatalog()

	for _, et := range []domain.EmployerType{domain.EmployerField, domain.EmployerHQ} {
		var names []string
		for _, tpl := range catalog.For(et) {
			_, ok := formulas.Lookup(et, tpl.Name)
			assert.True(t, ok, "%s/%s has no formula", et, tpl.Name)
			names = append(names, tpl.Name)
		}
		assert.ElementsMatch(t, names, formulas.Names(et))
	}
}

func TestDefaultFormulas_LowerBoundInputs(t *testing.T) {
	formulas := kpi.DefaultFormulas()

	cases := []struct {
		et   domain.EmployerType
		name string
		want float64
	}{
		{domain.EmployerField, "Timeliness of DPR Preparation", 100},
		{domain.EmployerField, "Quality of DPR Preparation", 50},
		{domain.EmployerField, "Survey Accuracy", 80},
		{domain.EmployerField, "Adherence to Project Timelines", 70},
		{domain.EmployerField, "Expenditure Targets", 0},
		{domain.EmployerField, "Financial Targets", 95},
		{domain.EmployerField, "Physical Progress of Works", 87.5},
		{domain.EmployerField, "Compliance with Technical Standards", 90},
		{domain.EmployerHQ, "File Disposal Rate", 88.8889},
		{domain.EmployerHQ, "Turnaround Time", 100},
		{domain.EmployerHQ, "Quality of Drafting", 50},
		{domain.EmployerHQ, "Responsiveness", 80},
		{domain.EmployerHQ, "Digital Adoption", 70},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, formulas.Percentage(tc.et, tc.name, lowSource{}), 1e-4)
		})
	}
}

func TestFormulaRegistry_Percentage(t *testing.T) {
	r := kpi.NewFormulaRegistry()
	r.Register(domain.EmployerField, "Overshoot", fixedFormula(140))
	r.Register(domain.EmployerField, "Undershoot", fixedFormula(-3))

	assert.Equal(t, 100.0, r.Percentage(domain.EmployerField, "Overshoot", lowSource{}))
	assert.Equal(t, 0.0, r.Percentage(domain.EmployerField, "Undershoot", lowSource{}))
	assert.Equal(t, kpi.FallbackPercentage, r.Percentage(domain.EmployerHQ, "Overshoot", lowSource{}))
	assert.Equal(t, kpi.FallbackPercentage, r.Percentage(domain.EmployerField, "Unknown KPI", lowSource{}))
}

func TestSimulatedSource(t *testing.T) {
	t.Run("same seed replays the same draws", func(t *testing.T) {
		a := kpi.NewSimulatedSource(42)
		b := kpi.NewSimulatedSource(42)
		for i := 0; i < 50; i++ {
			require.Equal(t, a.Int("x", 2, 10), b.Int("x", 2, 10))
			require.Equal(t, a.Float("y", 0.5, 2.0), b.Float("y", 0.5, 2.0))
		}
	})

	t.Run("draws stay in range", func(t *testing.T) {
		for _, src := range []*kpi.SimulatedSource{kpi.NewSimulatedSource(0), kpi.NewSimulatedSource(9)} {
			for i := 0; i < 200; i++ {
				n := src.Int("files.tat_days", 2, 10)
				assert.GreaterOrEqual(t, n, 2)
				assert.LessOrEqual(t, n, 10)

				f := src.Float("survey.rmse", 0.5, 2.0)
				assert.GreaterOrEqual(t, f, 0.5)
				assert.Less(t, f, 2.0)
			}
		}
	})

	t.Run("empty range returns the minimum", func(t *testing.T) {
		src := kpi.NewSimulatedSource(1)
		assert.Equal(t, 5, src.Int("x", 5, 5))
		assert.Equal(t, 3.0, src.Float("y", 3, 1))
	})

	t.Run("default formulas always land in 0..100", func(t *testing.T) {
		formulas := kpi.DefaultFormulas()
		src := kpi.NewSimulatedSource(2026)
		for _, et := range []domain.EmployerType{domain.EmployerField, domain.EmployerHQ} {
			for _, name := range formulas.Names(et) {
				for i := 0; i < 20; i++ {
					pct := formulas.Percentage(et, name, src)
					assert.GreaterOrEqual(t, pct, 0.0)
					assert.LessOrEqual(t, pct, 100.0)
				}
			}
		}
	})
}
