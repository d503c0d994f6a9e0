package kpi

import (
	"context"

	"go-pms/internal/kpisummary"
	"go-pms/internal/scoring"
)

// ScoreSource exposes stored KPI scores to the aggregator and the APAR engine.
type ScoreSource struct {
	repo Repository
}

func NewScoreSource(repo Repository) *ScoreSource {
	return &ScoreSource{repo: repo}
}

// ScoreItems returns every KPI of the employee in the period as aggregator input.
func (s *ScoreSource) ScoreItems(ctx context.Context, employeeID, period string) ([]kpisummary.Item, error) {
	kpis, err := s.repo.List(ctx, ListFilter{AssignedTo: employeeID, Period: period})
	if err != nil {
		return nil, err
	}
	items := make([]kpisummary.Item, 0, len(kpis))
	for _, k := range kpis {
		items = append(items, toItem(k))
	}
	return items, nil
}

// CompletedScores returns the raw scores of the employee's completed KPIs,
// whatever spelling their status was stored with.
func (s *ScoreSource) CompletedScores(ctx context.Context, employeeID string) ([]float64, error) {
	kpis, err := s.repo.FindCompletedByAssignee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, 0, len(kpis))
	for _, k := range kpis {
		if k.Status != scoring.StatusCompleted {
			continue
		}
		scores = append(scores, k.Score)
	}
	return scores, nil
}

// TotalScore sums the weighted scores of all the employee's KPIs and
// reports how many KPIs contributed.
func (s *ScoreSource) TotalScore(ctx context.Context, employeeID string) (float64, int, error) {
	kpis, err := s.repo.FindByAssignee(ctx, employeeID)
	if err != nil {
		return 0, 0, err
	}
	total := 0.0
	for _, k := range kpis {
		total += k.Score
	}
	return total, len(kpis), nil
}
