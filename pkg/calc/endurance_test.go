package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateEndurance(t *testing.T) {
	e := EstimateEndurance(10, 3, 20)
	assert.InDelta(t, 30, e.TBWRequiredOverLife, eps)
	assert.InDelta(t, 36, e.TBWWithMargin, eps)
	assert.Equal(t, 3.0, e.LifetimeYears)
	assert.Equal(t, 20.0, e.SafetyMarginPct)
}

func TestEstimateEnduranceMarginOrdering(t *testing.T) {
	for _, tbPerYear := range []float64{0.5, 7.3, 31.58} {
		for _, years := range []float64{0.5, 1, 3, 10} {
			noMargin := EstimateEndurance(tbPerYear, years, 0)
			assert.Equal(t, noMargin.TBWRequiredOverLife, noMargin.TBWWithMargin)

			for _, margin := range []float64{1, 20, 100, 200} {
				e := EstimateEndurance(tbPerYear, years, margin)
				assert.Greater(t, e.TBWWithMargin, e.TBWRequiredOverLife)
			}
		}
	}
}

func TestEstimateEnduranceZeroWrites(t *testing.T) {
	e := EstimateEndurance(0, 3, 200)
	assert.Zero(t, e.TBWRequiredOverLife)
	assert.Zero(t, e.TBWWithMargin)
}
