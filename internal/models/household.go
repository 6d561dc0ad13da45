// Package models defines the data structures for the rooftop subsidy engine.
package models

import (
	"time"
)

// ConsumerSegment represents the electricity consumer category of a household.
type ConsumerSegment string

const (
	ConsumerSegmentResidential  ConsumerSegment = "residential"
	ConsumerSegmentAgricultural ConsumerSegment = "agricultural"
	ConsumerSegmentCommunity    ConsumerSegment = "community"
	ConsumerSegmentCommercial   ConsumerSegment = "commercial"
)

// ValidConsumerSegments returns all valid consumer segment values.
func ValidConsumerSegments() []ConsumerSegment {
	return []ConsumerSegment{
		ConsumerSegmentResidential,
		ConsumerSegmentAgricultural,
		ConsumerSegmentCommunity,
		ConsumerSegmentCommercial,
	}
}

// IsValid checks if the consumer segment is valid.
func (c ConsumerSegment) IsValid() bool {
	for _, valid := range ValidConsumerSegments() {
		if c == valid {
			return true
		}
	}
	return false
}

// HouseholdProfile is the per-request input to the estimation and matching
// engine. State, segment and the two boolean flags are always supplied by the
// caller; the numeric fields are optional and nil means unknown.
type HouseholdProfile struct {
	State                string          `json:"state"`
	ConsumerSegment      ConsumerSegment `json:"consumer_segment"`
	OwnsProperty         bool            `json:"owns_property"`
	IsGridConnected      bool            `json:"is_grid_connected"`
	RoofAreaSqm          *float64        `json:"roof_area_sqm,omitempty"`
	AnnualConsumptionKWh *float64        `json:"annual_consumption_kwh,omitempty"`
	MonthlyBillINR       *float64        `json:"monthly_bill_inr,omitempty"`
	ProviderID           string          `json:"provider_id,omitempty"`
}

// Household represents a persisted household in the system.
type Household struct {
	ID                   int64           `json:"id" db:"id"`
	HouseholdID          string          `json:"household_id" db:"household_id"`
	State                string          `json:"state" db:"state"`
	ConsumerSegment      ConsumerSegment `json:"consumer_segment" db:"consumer_segment"`
	OwnsProperty         bool            `json:"owns_property" db:"owns_property"`
	IsGridConnected      bool            `json:"is_grid_connected" db:"is_grid_connected"`
	RoofAreaSqm          *float64        `json:"roof_area_sqm,omitempty" db:"roof_area_sqm"`
	AnnualConsumptionKWh *float64        `json:"annual_consumption_kwh,omitempty" db:"annual_consumption_kwh"`
	MonthlyBillINR       *float64        `json:"monthly_bill_inr,omitempty" db:"monthly_bill_inr"`
	ProviderID           string          `json:"provider_id,omitempty" db:"provider_id"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" db:"updated_at"`
}

// HouseholdCreate represents the data needed to create or update a household.
type HouseholdCreate struct {
	HouseholdID          string          `json:"household_id" validate:"required,min=1,max=50"`
	State                string          `json:"state" validate:"required"`
	ConsumerSegment      ConsumerSegment `json:"consumer_segment" validate:"required"`
	OwnsProperty         bool            `json:"owns_property"`
	IsGridConnected      bool            `json:"is_grid_connected"`
	RoofAreaSqm          *float64        `json:"roof_area_sqm,omitempty"`
	AnnualConsumptionKWh *float64        `json:"annual_consumption_kwh,omitempty"`
	MonthlyBillINR       *float64        `json:"monthly_bill_inr,omitempty"`
	ProviderID           string          `json:"provider_id,omitempty"`
}

// Profile converts a persisted household into the engine input profile.
func (h *Household) Profile() HouseholdProfile {
	return HouseholdProfile{
		State:                h.State,
		ConsumerSegment:      h.ConsumerSegment,
		OwnsProperty:         h.OwnsProperty,
		IsGridConnected:      h.IsGridConnected,
		RoofAreaSqm:          h.RoofAreaSqm,
		AnnualConsumptionKWh: h.AnnualConsumptionKWh,
		MonthlyBillINR:       h.MonthlyBillINR,
		ProviderID:           h.ProviderID,
	}
}

// EstimateSnapshot is the latest financial estimate persisted per household
// so the dashboard can render a summary without recomputing.
type EstimateSnapshot struct {
	HouseholdID         string    `json:"household_id" db:"household_id"`
	SystemSizeKW        float64   `json:"system_size_kw" db:"system_size_kw"`
	NetCostINR          float64   `json:"net_cost_inr" db:"net_cost_inr"`
	EstimatedSavingsINR float64   `json:"estimated_savings_inr" db:"estimated_savings_inr"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
