package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rooftop-subsidy-engine/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestEstimateSystemSizeKW(t *testing.T) {
	tests := []struct {
		name        string
		roofArea    *float64
		consumption *float64
		want        float64
	}{
		{"consumption takes priority", floatPtr(40), floatPtr(3300), 3.0},
		{"roof area when no consumption", floatPtr(40), nil, 5.0},
		{"upper clamp boundary from roof", floatPtr(80), nil, 10.0},
		{"lower clamp boundary from consumption", nil, floatPtr(550), 0.5},
		{"default starter system", nil, nil, 1.0},
		{"huge consumption clamped", nil, floatPtr(100000), 10.0},
		{"tiny roof clamped", floatPtr(1), nil, 0.5},
		{"non-positive inputs fall through", floatPtr(-5), floatPtr(0), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateSystemSizeKW(tt.roofArea, tt.consumption)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, MinSystemSizeKW)
			assert.LessOrEqual(t, got, MaxSystemSizeKW)
		})
	}
}

func TestEstimateSubsidyWithBuiltinRules(t *testing.T) {
	result, err := EstimateSubsidy(3.0, DefaultCostPerKW, nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, 195000.0, result.GrossCostINR, 1e-6)
	// 40% of 195000 is below the 200000 cap
	assert.InDelta(t, 78000.0, result.CentralSubsidyINR, 1e-6)
	assert.InDelta(t, 0.0, result.StateSubsidyINR, 1e-6)
	assert.InDelta(t, 117000.0, result.NetCostINR, 1e-6)
	assert.InDelta(t, 3.0, result.SystemSizeKW, 1e-9)
}

func TestEstimateSubsidyRuleCap(t *testing.T) {
	// 40% of a 10 kW system (650000) would be 260000; the cap holds it at 200000
	result, err := EstimateSubsidy(10.0, DefaultCostPerKW, nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, 650000.0, result.GrossCostINR, 1e-6)
	assert.InDelta(t, 200000.0, result.CentralSubsidyINR, 1e-6)
	assert.InDelta(t, 450000.0, result.NetCostINR, 1e-6)
}

func TestEstimateSubsidyStatePolicy(t *testing.T) {
	policy := &models.StatePolicy{CapexSubsidyPercent: 20}
	result, err := EstimateSubsidy(2.0, DefaultCostPerKW, nil, policy)
	require.NoError(t, err)

	assert.InDelta(t, 130000.0, result.GrossCostINR, 1e-6)
	assert.InDelta(t, 52000.0, result.CentralSubsidyINR, 1e-6)
	assert.InDelta(t, 26000.0, result.StateSubsidyINR, 1e-6)
	assert.InDelta(t, 52000.0, result.NetCostINR, 1e-6)
}

func TestEstimateSubsidyNetCostNeverNegative(t *testing.T) {
	rules := []models.SubsidyRule{
		{ID: "a", Name: "Rule A", SubsidyPercent: 80},
		{ID: "b", Name: "Rule B", SubsidyPercent: 80},
	}
	result, err := EstimateSubsidy(2.0, DefaultCostPerKW, rules, &models.StatePolicy{CapexSubsidyPercent: 50})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, result.NetCostINR, 1e-9)
}

func TestEstimateSubsidyPerRuleCaps(t *testing.T) {
	rules := []models.SubsidyRule{
		{ID: "capped", Name: "Capped", SubsidyPercent: 50, MaxAmountINR: floatPtr(10000)},
		{ID: "uncapped", Name: "Uncapped", SubsidyPercent: 10},
	}
	result, err := EstimateSubsidy(2.0, DefaultCostPerKW, rules, nil)
	require.NoError(t, err)

	// Each rule is capped individually before summation
	assert.InDelta(t, 10000.0+13000.0, result.CentralSubsidyINR, 1e-6)
}

func TestEstimateSubsidyZeroSize(t *testing.T) {
	result, err := EstimateSubsidy(0, DefaultCostPerKW, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, result.GrossCostINR)
	assert.Zero(t, result.NetCostINR)
}

func TestEstimateSubsidyInvalidInput(t *testing.T) {
	_, err := EstimateSubsidy(-1, DefaultCostPerKW, nil, nil)
	assert.ErrorIs(t, err, models.ErrInvalidSystemSize)

	_, err = EstimateSubsidy(math.NaN(), DefaultCostPerKW, nil, nil)
	assert.ErrorIs(t, err, models.ErrInvalidSystemSize)

	_, err = EstimateSubsidy(math.Inf(1), DefaultCostPerKW, nil, nil)
	assert.ErrorIs(t, err, models.ErrInvalidSystemSize)

	_, err = EstimateSubsidy(2.0, -100, nil, nil)
	assert.ErrorIs(t, err, models.ErrInvalidCostPerKW)
}

func TestEstimateSubsidyIdempotent(t *testing.T) {
	first, err := EstimateSubsidy(4.2, DefaultCostPerKW, nil, &models.StatePolicy{CapexSubsidyPercent: 5})
	require.NoError(t, err)
	second, err := EstimateSubsidy(4.2, DefaultCostPerKW, nil, &models.StatePolicy{CapexSubsidyPercent: 5})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSavingsINR(t *testing.T) {
	result, err := EstimateSubsidy(3.0, DefaultCostPerKW, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, result.CentralSubsidyINR+result.StateSubsidyINR, result.SavingsINR(), 1e-6)
}
