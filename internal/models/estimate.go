// Package models defines the data structures for the rooftop subsidy engine.
package models

// SubsidyRule is a generic percentage-based capital subsidy applied during
// cost estimation, distinct from the named schemes in the catalog.
type SubsidyRule struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SubsidyPercent float64  `json:"subsidy_percent"`
	MaxAmountINR   *float64 `json:"max_amount_inr,omitempty"`
}

// StatePolicy is a state-level flat capital subsidy applied to gross cost.
type StatePolicy struct {
	CapexSubsidyPercent float64 `json:"capex_subsidy_percent"`
}

// EstimateResult is the financial outcome for a recommended system size.
// NetCostINR is never negative.
type EstimateResult struct {
	GrossCostINR      float64 `json:"gross_cost_inr"`
	CentralSubsidyINR float64 `json:"central_subsidy_inr"`
	StateSubsidyINR   float64 `json:"state_subsidy_inr"`
	NetCostINR        float64 `json:"net_cost_inr"`
	SystemSizeKW      float64 `json:"system_size_kw"`
}

// SavingsINR is the total subsidy benefit, i.e. what the household saves
// against the gross cost.
func (e *EstimateResult) SavingsINR() float64 {
	return e.GrossCostINR - e.NetCostINR
}
