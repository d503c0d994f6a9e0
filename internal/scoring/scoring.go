// Package scoring holds the pure functions that turn KPI measurements into
// progress, weighted score and status. Nothing here touches storage.
package scoring

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	completedFrom  = 90.0
	inProgressFrom = 60.0
)

// ComputeProgress returns achieved/target as a percentage in [0, 100].
// Non-positive targets and non-finite inputs yield 0.
func ComputeProgress(achieved, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := 100 * achieved / target
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return Clamp(p, 0, 100)
}

// ComputeScore weights a progress percentage: (progress/100) * weightage.
func ComputeScore(progress, weightage float64) float64 {
	return progress / 100 * weightage
}

// DeriveStatus picks the status implied by a progress percentage.
func DeriveStatus(progress float64) Status {
	switch {
	case progress >= completedFrom:
		return StatusCompleted
	case progress >= inProgressFrom:
		return StatusInProgress
	default:
		return StatusAtRisk
	}
}

type Result struct {
	Progress float64
	Score    float64
}

// Evaluate computes progress and weighted score in one step.
func Evaluate(achieved, target, weightage float64) Result {
	p := ComputeProgress(achieved, target)
	return Result{Progress: p, Score: ComputeScore(p, weightage)}
}

// Clamp bounds v to [lo, hi], mapping NaN to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}

// Mean is the arithmetic mean of values, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Round2 rounds half away from zero to two decimals for presentation.
// Stored values keep full precision.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
