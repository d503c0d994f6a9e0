package kpisummary_test

import (
	"testing"

	"go-pms/internal/kpisummary"

	"github.com/stretchr/testify/assert"
)

func TestOutputScore(t *testing.T) {
	t.Run("weighted normalisation", func(t *testing.T) {
		items := []kpisummary.Item{
			{Name: "A", Score: 17, Weightage: 20},
			{Name: "B", Score: 8, Weightage: 10},
		}

		assert.InDelta(t, 58.3333333, kpisummary.OutputScore(items), 1e-6)
		assert.InDelta(t, 25.0, kpisummary.TotalScore(items), 1e-9)
	})

	t.Run("full marks cap at seventy", func(t *testing.T) {
		items := []kpisummary.Item{{Score: 12.5, Weightage: 12.5}, {Score: 87.5, Weightage: 87.5}}
		assert.InDelta(t, 70.0, kpisummary.OutputScore(items), 1e-9)
	})

	t.Run("no weight yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, kpisummary.OutputScore(nil))
		assert.Equal(t, 0.0, kpisummary.OutputScore([]kpisummary.Item{{Score: 5, Weightage: 0}}))
	})

	t.Run("deterministic", func(t *testing.T) {
		items := []kpisummary.Item{{Score: 3.3, Weightage: 7.1}, {Score: 1.1, Weightage: 2.9}}
		assert.Equal(t, kpisummary.OutputScore(items), kpisummary.OutputScore(items))
	})
}
