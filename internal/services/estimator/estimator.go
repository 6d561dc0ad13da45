// Package estimator implements system sizing and the cost/subsidy calculator.
package estimator

import (
	"math"

	"rooftop-subsidy-engine/internal/models"
)

// Sizing and cost model constants.
const (
	// DefaultCostPerKW is the installed cost model in INR per kW.
	DefaultCostPerKW = 65000.0

	// DefaultAnnualProductionPerKW is the expected yield in kWh per kW per year.
	DefaultAnnualProductionPerKW = 1100.0

	// DefaultAreaPerKW is the usable roof area needed per kW in square metres.
	DefaultAreaPerKW = 8.0

	// MinSystemSizeKW and MaxSystemSizeKW bound recommendations to a
	// practical residential rooftop range.
	MinSystemSizeKW = 0.5
	MaxSystemSizeKW = 10.0

	// defaultSystemSizeKW is the starter recommendation when neither roof
	// area nor consumption is known.
	defaultSystemSizeKW = 1.0
)

// BuiltinRules returns the default central capital subsidy rules.
func BuiltinRules() []models.SubsidyRule {
	maxAmount := 200000.0
	return []models.SubsidyRule{
		{
			ID:             "pm-surya-ghar",
			Name:           "PM-Surya Ghar: Muft Bijli Yojana",
			SubsidyPercent: 40,
			MaxAmountINR:   &maxAmount,
		},
	}
}

// EstimateSystemSizeKW recommends a system size from what is known about the
// household. Annual consumption takes priority over roof area; with neither,
// a 1 kW starter system is assumed. The result is clamped to
// [MinSystemSizeKW, MaxSystemSizeKW]; out-of-range estimates are clamped,
// never rejected.
func EstimateSystemSizeKW(roofAreaSqm, annualConsumptionKWh *float64) float64 {
	var estimated float64
	switch {
	case annualConsumptionKWh != nil && *annualConsumptionKWh > 0:
		estimated = *annualConsumptionKWh / DefaultAnnualProductionPerKW
	case roofAreaSqm != nil && *roofAreaSqm > 0:
		estimated = *roofAreaSqm / DefaultAreaPerKW
	default:
		estimated = defaultSystemSizeKW
	}

	return math.Min(MaxSystemSizeKW, math.Max(MinSystemSizeKW, estimated))
}

// EstimateSubsidy computes the financial estimate for a system size. Each
// rule's eligible amount is capped individually before summation, the state
// policy applies a flat percentage of gross cost, and the net cost is floored
// at zero. Pass nil rules for the builtin set and a nil policy for no state
// subsidy.
func EstimateSubsidy(systemSizeKW, costPerKW float64, rules []models.SubsidyRule, policy *models.StatePolicy) (*models.EstimateResult, error) {
	if systemSizeKW < 0 || math.IsNaN(systemSizeKW) || math.IsInf(systemSizeKW, 0) {
		return nil, models.ErrInvalidSystemSize
	}
	if costPerKW < 0 || math.IsNaN(costPerKW) || math.IsInf(costPerKW, 0) {
		return nil, models.ErrInvalidCostPerKW
	}

	if rules == nil {
		rules = BuiltinRules()
	}

	grossCost := systemSizeKW * costPerKW

	var centralTotal float64
	for _, rule := range rules {
		eligible := grossCost * (rule.SubsidyPercent / 100.0)
		if rule.MaxAmountINR != nil && eligible > *rule.MaxAmountINR {
			eligible = *rule.MaxAmountINR
		}
		centralTotal += eligible
	}

	var stateTotal float64
	if policy != nil {
		stateTotal = grossCost * (policy.CapexSubsidyPercent / 100.0)
	}

	netCost := grossCost - centralTotal - stateTotal
	if netCost < 0 {
		netCost = 0
	}

	return &models.EstimateResult{
		GrossCostINR:      grossCost,
		CentralSubsidyINR: centralTotal,
		StateSubsidyINR:   stateTotal,
		NetCostINR:        netCost,
		SystemSizeKW:      systemSizeKW,
	}, nil
}
