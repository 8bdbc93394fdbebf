package usecase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/growthx-admin/internal/usecase"
)

func TestProjectProfitCompounds(t *testing.T) {
	projections, err := usecase.ProjectProfit(10000, 0.1299, 12)

	assert.NoError(t, err)
	assert.Len(t, projections, 12)

	// Month 1: 10000 * 1.1299
	assert.InDelta(t, 11299, projections[0].Total, 0.01)
	assert.InDelta(t, 1299, projections[0].Profit, 0.01)

	// Month 12: 10000 * 1.1299^12
	want := 10000 * math.Pow(1.1299, 12)
	assert.InDelta(t, want, projections[11].Total, 0.01)

	// Compounding grows strictly month over month.
	for i := 1; i < len(projections); i++ {
		assert.Greater(t, projections[i].Total, projections[i-1].Total)
	}
}

func TestProjectProfitZeroPrincipal(t *testing.T) {
	projections, err := usecase.ProjectProfit(0, 0.1299, 6)

	assert.NoError(t, err)
	for _, p := range projections {
		assert.Zero(t, p.Total)
		assert.Zero(t, p.Profit)
	}
}

func TestProjectProfitRejectsBadInput(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		months    int
	}{
		{"negative principal", -100, 0.1299, 12},
		{"NaN principal", math.NaN(), 0.1299, 12},
		{"infinite principal", math.Inf(1), 0.1299, 12},
		{"NaN rate", 10000, math.NaN(), 12},
		{"zero months", 10000, 0.1299, 0},
		{"too many months", 10000, 0.1299, 121},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := usecase.ProjectProfit(c.principal, c.rate, c.months)
			assert.Error(t, err)
			assert.True(t, usecase.IsDomainError(err))
		})
	}
}
