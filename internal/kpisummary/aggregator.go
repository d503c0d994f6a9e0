package kpisummary

// Item is one KPI's contribution to an output score.
type Item struct {
	KPIID     string
	Name      string
	Score     float64
	Weightage float64
}

// OutputScale is the share of the composite score contributed by KPIs.
// The remaining 30 points belong to the behavioural component.
const OutputScale = 70.0

// OutputScore rescales the summed weighted scores onto the 70 point slice:
// sum(score) / sum(weightage) * 70, or 0 when no weight exists.
// Returns full precision; round only for presentation.
func OutputScore(items []Item) float64 {
	var scores, weights float64
	for _, it := range items {
		scores += it.Score
		weights += it.Weightage
	}
	if weights <= 0 {
		return 0
	}
	return scores / weights * OutputScale
}

// TotalScore is the raw sum of weighted scores.
func TotalScore(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Score
	}
	return total
}
