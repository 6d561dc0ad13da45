// Package handlers provides the HTTP API for the rooftop subsidy engine.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"rooftop-subsidy-engine/internal/models"
	"rooftop-subsidy-engine/internal/services/estimator"
	"rooftop-subsidy-engine/internal/services/schemes"
	"rooftop-subsidy-engine/internal/services/tariff"
	"rooftop-subsidy-engine/internal/utils"
)

// EstimateRequest is the payload for the estimation endpoint. HouseholdID is
// optional; when present and persistence is available, the resulting estimate
// is stored as the household's latest snapshot.
type EstimateRequest struct {
	models.HouseholdProfile
	HouseholdID string              `json:"household_id,omitempty"`
	CostPerKW   *float64            `json:"cost_per_kw,omitempty"`
	StatePolicy *models.StatePolicy `json:"state_policy,omitempty"`
}

// EstimateResponse is the estimation endpoint output.
type EstimateResponse struct {
	Estimate             *models.EstimateResult `json:"estimate"`
	EstimatedMonthlyKWh  *float64               `json:"estimated_monthly_kwh,omitempty"`
	ProviderLabel        string                 `json:"provider_label,omitempty"`
	AnnualConsumptionKWh *float64               `json:"annual_consumption_kwh,omitempty"`
}

func (s *Server) providersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"choices":        tariff.ProviderChoices(),
			"providers":      tariff.Providers(),
			"default_tariff": tariff.DefaultTariffINRPerKWh,
		},
	})
}

func (s *Server) estimateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.ConsumerSegment = models.NormalizeConsumerSegment(string(req.ConsumerSegment))
	if err := models.ValidateProfile(&req.HouseholdProfile); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Derive annual consumption from the bill when it is the only signal.
	annual := req.AnnualConsumptionKWh
	monthlyUnits := tariff.EstimateMonthlyUnits(req.MonthlyBillINR, req.ProviderID)
	if annual == nil && monthlyUnits != nil {
		derived := *monthlyUnits * 12
		annual = &derived
	}

	systemKW := estimator.EstimateSystemSizeKW(req.RoofAreaSqm, annual)

	costPerKW := estimator.DefaultCostPerKW
	if req.CostPerKW != nil {
		costPerKW = *req.CostPerKW
	}

	result, err := estimator.EstimateSubsidy(systemKW, costPerKW, nil, req.StatePolicy)
	if err != nil {
		if errors.Is(err, models.ErrInvalidSystemSize) || errors.Is(err, models.ErrInvalidCostPerKW) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Estimation failed")
		return
	}

	providerLabel, _ := tariff.ProviderLabel(req.ProviderID)

	if req.HouseholdID != "" && s.households != nil {
		snap := &models.EstimateSnapshot{
			HouseholdID:         req.HouseholdID,
			SystemSizeKW:        result.SystemSizeKW,
			NetCostINR:          result.NetCostINR,
			EstimatedSavingsINR: result.SavingsINR(),
		}
		if err := s.households.SaveEstimateSnapshot(r.Context(), snap); err != nil {
			utils.Logger.Warn("Failed to save estimate snapshot",
				zap.String("household_id", req.HouseholdID),
				zap.Error(err),
			)
		}
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data: EstimateResponse{
			Estimate:             result,
			EstimatedMonthlyKWh:  monthlyUnits,
			ProviderLabel:        providerLabel,
			AnnualConsumptionKWh: annual,
		},
	})
}

// MatchRequest is the payload for the scheme matching endpoint.
type MatchRequest struct {
	models.HouseholdProfile
}

// MatchResponse pairs the matched schemes with the profile that produced
// them, plus the filter facets for the presentation layer.
type MatchResponse struct {
	Profile models.HouseholdProfile   `json:"profile"`
	Matches []models.SchemeDefinition `json:"matches"`
	Facets  models.FilterFacets       `json:"facets"`
}

func (s *Server) matchSchemesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.ConsumerSegment = models.NormalizeConsumerSegment(string(req.ConsumerSegment))
	if err := models.ValidateProfile(&req.HouseholdProfile); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	matches := s.schemes.Match(req.HouseholdProfile)

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data: MatchResponse{
			Profile: req.HouseholdProfile,
			Matches: matches,
			Facets:  schemes.FilterOptions(matches),
		},
	})
}

func (s *Server) schemesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if id := r.URL.Query().Get("id"); id != "" {
		scheme, ok := s.schemes.Lookup(id)
		if !ok {
			writeError(w, http.StatusNotFound, "Scheme not found")
			return
		}
		writeJSON(w, http.StatusOK, Response{Success: true, Data: scheme})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"regions": s.schemes.Regions(),
			"catalog": schemes.DefaultCatalog(),
		},
	})
}
