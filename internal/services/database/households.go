// Package database provides database operations for the rooftop subsidy engine.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"rooftop-subsidy-engine/internal/models"
)

// HouseholdRepository handles household database operations.
type HouseholdRepository struct {
	db Querier
}

// NewHouseholdRepository creates a new household repository.
func NewHouseholdRepository(db Querier) *HouseholdRepository {
	return &HouseholdRepository{db: db}
}

// Upsert inserts a household or updates it if the household_id already exists.
func (r *HouseholdRepository) Upsert(ctx context.Context, h *models.HouseholdCreate) (int64, error) {
	query := `
		INSERT INTO households (household_id, state, consumer_segment, owns_property, is_grid_connected,
			roof_area_sqm, annual_consumption_kwh, monthly_bill_inr, provider_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		ON CONFLICT (household_id) DO UPDATE SET
			state = EXCLUDED.state,
			consumer_segment = EXCLUDED.consumer_segment,
			owns_property = EXCLUDED.owns_property,
			is_grid_connected = EXCLUDED.is_grid_connected,
			roof_area_sqm = EXCLUDED.roof_area_sqm,
			annual_consumption_kwh = EXCLUDED.annual_consumption_kwh,
			monthly_bill_inr = EXCLUDED.monthly_bill_inr,
			provider_id = EXCLUDED.provider_id,
			updated_at = EXCLUDED.updated_at
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		h.HouseholdID,
		h.State,
		string(h.ConsumerSegment),
		h.OwnsProperty,
		h.IsGridConnected,
		h.RoofAreaSqm,
		h.AnnualConsumptionKWh,
		h.MonthlyBillINR,
		h.ProviderID,
		time.Now().UTC(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to upsert household: %w", err)
	}

	return id, nil
}

// GetByHouseholdID fetches a household by its external id.
func (r *HouseholdRepository) GetByHouseholdID(ctx context.Context, householdID string) (*models.Household, error) {
	query := `
		SELECT id, household_id, state, consumer_segment, owns_property, is_grid_connected,
			roof_area_sqm, annual_consumption_kwh, monthly_bill_inr, provider_id, created_at, updated_at
		FROM households
		WHERE household_id = $1`

	var h models.Household
	err := r.db.QueryRow(ctx, query, householdID).Scan(
		&h.ID,
		&h.HouseholdID,
		&h.State,
		&h.ConsumerSegment,
		&h.OwnsProperty,
		&h.IsGridConnected,
		&h.RoofAreaSqm,
		&h.AnnualConsumptionKWh,
		&h.MonthlyBillINR,
		&h.ProviderID,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get household: %w", err)
	}

	return &h, nil
}

// SaveEstimateSnapshot stores the latest financial estimate for a household.
func (r *HouseholdRepository) SaveEstimateSnapshot(ctx context.Context, snap *models.EstimateSnapshot) error {
	query := `
		INSERT INTO estimate_snapshots (household_id, system_size_kw, net_cost_inr, estimated_savings_inr, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (household_id) DO UPDATE SET
			system_size_kw = EXCLUDED.system_size_kw,
			net_cost_inr = EXCLUDED.net_cost_inr,
			estimated_savings_inr = EXCLUDED.estimated_savings_inr,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		snap.HouseholdID,
		snap.SystemSizeKW,
		snap.NetCostINR,
		snap.EstimatedSavingsINR,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save estimate snapshot: %w", err)
	}

	return nil
}

// GetEstimateSnapshot fetches the latest estimate for a household, or
// models.ErrNotFound if none was stored yet.
func (r *HouseholdRepository) GetEstimateSnapshot(ctx context.Context, householdID string) (*models.EstimateSnapshot, error) {
	query := `
		SELECT household_id, system_size_kw, net_cost_inr, estimated_savings_inr, updated_at
		FROM estimate_snapshots
		WHERE household_id = $1`

	var snap models.EstimateSnapshot
	err := r.db.QueryRow(ctx, query, householdID).Scan(
		&snap.HouseholdID,
		&snap.SystemSizeKW,
		&snap.NetCostINR,
		&snap.EstimatedSavingsINR,
		&snap.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get estimate snapshot: %w", err)
	}

	return &snap, nil
}
