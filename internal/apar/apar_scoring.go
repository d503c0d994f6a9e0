package apar

import (
	"context"
	"math"
	"math/rand/v2"

	"go-pms/internal/scoring"
)

const (
	// kpiSlice is the share of a 100-point appraisal carried by KPIs.
	kpiSlice = 70.0

	excellentFrom = 80.0
	averageFrom   = 60.0

	PerformanceExcellent = "Excellent"
	PerformanceAverage   = "Average"
	PerformancePoor      = "Poor"
)

// FinalScore is the reviewed/finalized appraisal score: the plain mean of the
// employee's completed KPI scores plus the reviewer's score. It is not the
// 70-point weighted output score.
func FinalScore(completedScores []float64, reviewerScore float64) float64 {
	return scoring.Mean(completedScores) + reviewerScore
}

// ConvertKPITotal rescales a sum of KPI scores onto the KPI slice, rounded
// to a whole point.
func ConvertKPITotal(total float64) float64 {
	return math.Round(total / 100 * kpiSlice)
}

// AnalyzedFinalScore caps the analysed appraisal at 100.
func AnalyzedFinalScore(convertedKPI, reviewerScore float64) float64 {
	return math.Min(convertedKPI+reviewerScore, 100)
}

func PerformanceLevel(score float64) string {
	switch {
	case score >= excellentFrom:
		return PerformanceExcellent
	case score >= averageFrom:
		return PerformanceAverage
	default:
		return PerformancePoor
	}
}

// ReviewerScorer supplies the reviewer component when an appraisal is
// produced by analysis instead of a human reviewer.
type ReviewerScorer interface {
	ReviewerScore(ctx context.Context, employeeID string, year int) float64
}

// RandomReviewerScorer draws a whole score uniformly from [Min, Max].
type RandomReviewerScorer struct {
	Min int
	Max int
}

func NewRandomReviewerScorer() RandomReviewerScorer {
	return RandomReviewerScorer{Min: 20, Max: 30}
}

func (r RandomReviewerScorer) ReviewerScore(context.Context, string, int) float64 {
	if r.Max <= r.Min {
		return float64(r.Min)
	}
	return float64(r.Min + rand.IntN(r.Max-r.Min+1))
}
