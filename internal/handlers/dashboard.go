// Package handlers provides the HTTP API for the rooftop subsidy engine.
package handlers

import (
	"errors"
	"net/http"

	"rooftop-subsidy-engine/internal/models"
)

// Fixed display figures shown alongside a stored estimate. These are
// presentation constants, not computed from the estimate.
const (
	displayMonthlySavingsINR  = 8200.0
	displayLifetimeSavingsINR = 152000.0
	displayCO2OffsetTonnes    = 1.8
)

// DashboardResponse aggregates a household's recent activity.
type DashboardResponse struct {
	RecentProjects  []*models.Project        `json:"recent_projects"`
	RecentEnergy    []*models.EnergyLog      `json:"recent_energy"`
	EnergyTotals    *models.EnergyTotals     `json:"energy_totals"`
	EstimateSummary *models.EstimateSnapshot `json:"estimate_summary,omitempty"`
	EstimateStats   *EstimateStats           `json:"estimate_stats,omitempty"`
}

// EstimateStats are the fixed display figures rendered with an estimate.
type EstimateStats struct {
	MonthlySavingsINR  float64 `json:"monthly_savings_inr"`
	LifetimeSavingsINR float64 `json:"lifetime_savings_inr"`
	CO2OffsetTonnes    float64 `json:"co2_offset_tonnes"`
}

func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if !s.requireDB(w) {
		return
	}

	householdID := householdIDParam(r)
	if householdID == "" {
		writeError(w, http.StatusBadRequest, "household_id is required")
		return
	}

	recentProjects, err := s.projects.ListByHousehold(r.Context(), householdID, 3)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load projects")
		return
	}

	recentEnergy, err := s.energy.ListByHousehold(r.Context(), householdID, 3)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load energy logs")
		return
	}

	totals, err := s.energy.Totals(r.Context(), householdID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to aggregate energy logs")
		return
	}

	resp := DashboardResponse{
		RecentProjects: recentProjects,
		RecentEnergy:   recentEnergy,
		EnergyTotals:   totals,
	}

	snapshot, err := s.households.GetEstimateSnapshot(r.Context(), householdID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Failed to load estimate summary")
		return
	}
	if snapshot != nil && snapshot.SystemSizeKW > 0 {
		resp.EstimateSummary = snapshot
		resp.EstimateStats = &EstimateStats{
			MonthlySavingsINR:  displayMonthlySavingsINR,
			LifetimeSavingsINR: displayLifetimeSavingsINR,
			CO2OffsetTonnes:    displayCO2OffsetTonnes,
		}
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: resp})
}
