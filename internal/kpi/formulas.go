package kpi

import (
	"math"
	"math/rand/v2"
	"sort"
	"sync"

	"go-pms/internal/domain"
	"go-pms/internal/scoring"
)

// FallbackPercentage is used for KPIs that have no registered formula.
const FallbackPercentage = 75.0

// InputSource supplies the raw measurements a formula works on. Each call
// names the measurement and the range it is expected to fall in; a real
// e-Office integration answers by name, the simulated source draws from the
// range.
type InputSource interface {
	Int(name string, min, max int) int
	Float(name string, min, max float64) float64
}

// Formula turns measurements into a performance percentage.
type Formula func(in InputSource) float64

type formulaKey struct {
	employerType domain.EmployerType
	kpiName      string
}

// FormulaRegistry maps (employer type, KPI name) to a Formula.
type FormulaRegistry struct {
	mu       sync.RWMutex
	formulas map[formulaKey]Formula
}

func NewFormulaRegistry() *FormulaRegistry {
	return &FormulaRegistry{formulas: map[formulaKey]Formula{}}
}

func (r *FormulaRegistry) Register(et domain.EmployerType, kpiName string, f Formula) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formulas[formulaKey{et, kpiName}] = f
}

func (r *FormulaRegistry) Lookup(et domain.EmployerType, kpiName string) (Formula, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formulas[formulaKey{et, kpiName}]
	return f, ok
}

// Percentage evaluates the KPI's formula clamped to [0, 100], or
// FallbackPercentage when none is registered.
func (r *FormulaRegistry) Percentage(et domain.EmployerType, kpiName string, in InputSource) float64 {
	f, ok := r.Lookup(et, kpiName)
	if !ok {
		return FallbackPercentage
	}
	return scoring.Clamp(f(in), 0, 100)
}

// Names lists the KPI names registered for an employer type.
func (r *FormulaRegistry) Names(et domain.EmployerType) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for k := range r.formulas {
		if k.employerType == et {
			out = append(out, k.kpiName)
		}
	}
	sort.Strings(out)
	return out
}

// DefaultFormulas registers the e-Office formulas for every default KPI.
func DefaultFormulas() *FormulaRegistry {
	r := NewFormulaRegistry()

	r.Register(domain.EmployerField, "Timeliness of DPR Preparation", dprTimeliness)
	r.Register(domain.EmployerField, "Quality of DPR Preparation", dprQuality)
	r.Register(domain.EmployerField, "Survey Accuracy", surveyAccuracy)
	r.Register(domain.EmployerField, "Adherence to Project Timelines", scheduleAdherence)
	r.Register(domain.EmployerField, "Expenditure Targets", budgetVariance)
	r.Register(domain.EmployerField, "Financial Targets", financialTargets)
	r.Register(domain.EmployerField, "Physical Progress of Works", physicalProgress)
	r.Register(domain.EmployerField, "Compliance with Technical Standards", standardsCompliance)

	r.Register(domain.EmployerHQ, "File Disposal Rate", fileDisposalRate)
	r.Register(domain.EmployerHQ, "Turnaround Time", medianTurnaround)
	r.Register(domain.EmployerHQ, "Quality of Drafting", draftingQuality)
	r.Register(domain.EmployerHQ, "Responsiveness", responsiveness)
	r.Register(domain.EmployerHQ, "Digital Adoption", digitalAdoption)

	return r
}

// Field formulas

func dprTimeliness(in InputSource) float64 {
	const plannedDays = 30.0
	actual := float64(in.Int("dpr.actual_days", 25, 35))
	return math.Min(100, 100*plannedDays/actual)
}

func dprQuality(in InputSource) float64 {
	const threshold = 5.0
	pages := float64(in.Int("dpr.total_pages", 200, 500))
	defects := float64(in.Int("dpr.total_defects", 5, 25))
	per100 := defects / pages * 100
	return 100 - per100/threshold*100
}

func surveyAccuracy(in InputSource) float64 {
	const tolerance = 2.5
	rmse := in.Float("survey.rmse", 0.5, 2.0)
	return 100 * (1 - rmse/tolerance)
}

func scheduleAdherence(in InputSource) float64 {
	const due = 10.0
	met := float64(in.Int("schedule.milestones_met", 7, 10))
	return met / due * 100
}

func budgetVariance(in InputSource) float64 {
	const (
		planned   = 1_000_000.0
		tolerance = 10.0
	)
	actual := in.Float("budget.actual_spend", 900_000, 1_100_000)
	variance := math.Abs(actual-planned) / planned * 100
	return 100 - variance/tolerance*100
}

func financialTargets(in InputSource) float64 {
	const planned = 1_000_000.0
	actual := in.Float("finance.actual_revenue", 950_000, 1_150_000)
	return actual / planned * 100
}

func physicalProgress(in InputSource) float64 {
	const planned = 80.0
	actual := in.Float("works.actual_progress", 70, 95)
	return 100 * actual / planned
}

func standardsCompliance(in InputSource) float64 {
	const total = 20.0
	passed := float64(in.Int("standards.checks_passed", 18, 20))
	return passed / total * 100
}

// HQ formulas

func fileDisposalRate(in InputSource) float64 {
	const (
		periodDays = 30.0
		targetRate = 1.5
	)
	disposed := float64(in.Int("files.disposed", 40, 60))
	return disposed / periodDays / targetRate * 100
}

func medianTurnaround(in InputSource) float64 {
	const (
		samples   = 20
		targetTAT = 5.0
	)
	days := make([]float64, samples)
	for i := range days {
		days[i] = float64(in.Int("files.tat_days", 2, 10))
	}
	sort.Float64s(days)
	median := (days[samples/2-1] + days[samples/2]) / 2
	return 100 - (median-targetTAT)/targetTAT*100
}

func draftingQuality(in InputSource) float64 {
	const threshold = 5.0
	drafts := float64(in.Int("drafting.total", 80, 120))
	returns := float64(in.Int("drafting.returns", 2, 8))
	return 100 - returns/drafts*100/threshold*100
}

func responsiveness(in InputSource) float64 {
	const total = 50.0
	within := float64(in.Int("actions.within_sla", 40, 50))
	return within / total * 100
}

func digitalAdoption(in InputSource) float64 {
	const transactions = 100.0
	eFile := float64(in.Int("digital.efile", 70, 95))
	eSign := float64(in.Int("digital.esign", 65, 90))
	eMove := float64(in.Int("digital.emovement", 75, 95))
	return (eFile + eSign + eMove) / transactions * 100 / 3
}

// SimulatedSource draws every measurement uniformly from its range. It
// stands in for the e-Office feed and is safe for concurrent use.
type SimulatedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedSource seeds a deterministic generator; seed 0 uses the
// runtime's random source.
func NewSimulatedSource(seed uint64) *SimulatedSource {
	if seed == 0 {
		return &SimulatedSource{}
	}
	return &SimulatedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SimulatedSource) Int(_ string, min, max int) int {
	if max <= min {
		return min
	}
	if s.rng == nil {
		return min + rand.IntN(max-min+1)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.IntN(max-min+1)
}

func (s *SimulatedSource) Float(_ string, min, max float64) float64 {
	if max <= min {
		return min
	}
	if s.rng == nil {
		return min + rand.Float64()*(max-min)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Float64()*(max-min)
}
