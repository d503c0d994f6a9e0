package apar_test

import (
	"context"
	"testing"

	"go-pms/internal/apar"

	"github.com/stretchr/testify/assert"
)

func TestFinalScore(t *testing.T) {
	assert.InDelta(t, 40.0, apar.FinalScore([]float64{12, 18}, 25), 1e-9)
	assert.Equal(t, 25.0, apar.FinalScore(nil, 25))
	assert.Zero(t, apar.FinalScore(nil, 0))
}

func TestConvertKPITotal(t *testing.T) {
	tests := []struct {
		total float64
		want  float64
	}{
		{0, 0},
		{100, 70},
		{85, 60},
		{84, 59},
		{50, 35},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, apar.ConvertKPITotal(tt.total), "total %v", tt.total)
	}
}

func TestAnalyzedFinalScore_Capped(t *testing.T) {
	assert.Equal(t, 95.0, apar.AnalyzedFinalScore(70, 25))
	assert.Equal(t, 100.0, apar.AnalyzedFinalScore(84, 30))
}

func TestPerformanceLevel(t *testing.T) {
	assert.Equal(t, apar.PerformanceExcellent, apar.PerformanceLevel(80))
	assert.Equal(t, apar.PerformanceAverage, apar.PerformanceLevel(79.99))
	assert.Equal(t, apar.PerformanceAverage, apar.PerformanceLevel(60))
	assert.Equal(t, apar.PerformancePoor, apar.PerformanceLevel(59))
}

func TestRandomReviewerScorer_Range(t *testing.T) {
	scorer := apar.NewRandomReviewerScorer()
	for i := 0; i < 200; i++ {
		got := scorer.ReviewerScore(context.Background(), "emp", 2025)
		assert.GreaterOrEqual(t, got, 20.0)
		assert.LessOrEqual(t, got, 30.0)
		assert.Equal(t, float64(int(got)), got)
	}

	assert.Equal(t, 22.0, apar.RandomReviewerScorer{Min: 22, Max: 22}.ReviewerScore(context.Background(), "emp", 2025))
}
