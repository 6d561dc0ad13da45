// Package database provides database operations for the rooftop subsidy engine.
package database

import (
	"context"
	"fmt"
	"time"

	"rooftop-subsidy-engine/internal/models"
)

// EnergyRepository handles energy tracker database operations.
type EnergyRepository struct {
	db Querier
}

// NewEnergyRepository creates a new energy repository.
func NewEnergyRepository(db Querier) *EnergyRepository {
	return &EnergyRepository{db: db}
}

// Create inserts a new tracker entry.
func (r *EnergyRepository) Create(ctx context.Context, entry *models.EnergyLogCreate) (int64, error) {
	query := `
		INSERT INTO energy_logs (household_id, entry_type, kwh, revenue_inr, panel_id, entry_date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		entry.HouseholdID,
		string(entry.EntryType),
		entry.KWh,
		entry.RevenueINR,
		entry.PanelID,
		entry.EntryDate,
		entry.Note,
		time.Now().UTC(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create energy log: %w", err)
	}

	return id, nil
}

// ListByHousehold returns a household's tracker entries, newest first.
func (r *EnergyRepository) ListByHousehold(ctx context.Context, householdID string, limit int) ([]*models.EnergyLog, error) {
	query := `
		SELECT id, household_id, entry_type, kwh, revenue_inr, panel_id, entry_date, note, created_at
		FROM energy_logs
		WHERE household_id = $1
		ORDER BY entry_date DESC, created_at DESC`

	args := []any{householdID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list energy logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.EnergyLog, 0)
	for rows.Next() {
		var log models.EnergyLog
		if err := rows.Scan(
			&log.ID,
			&log.HouseholdID,
			&log.EntryType,
			&log.KWh,
			&log.RevenueINR,
			&log.PanelID,
			&log.EntryDate,
			&log.Note,
			&log.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan energy log: %w", err)
		}
		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read energy logs: %w", err)
	}

	return logs, nil
}

// Totals aggregates generation, export and revenue for a household.
func (r *EnergyRepository) Totals(ctx context.Context, householdID string) (*models.EnergyTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(kwh) FILTER (WHERE entry_type = 'generation'), 0),
			COALESCE(SUM(kwh) FILTER (WHERE entry_type = 'export'), 0),
			COALESCE(SUM(revenue_inr), 0)
		FROM energy_logs
		WHERE household_id = $1`

	var totals models.EnergyTotals
	err := r.db.QueryRow(ctx, query, householdID).Scan(
		&totals.GenerationKWh,
		&totals.ExportKWh,
		&totals.RevenueINR,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate energy logs: %w", err)
	}

	return &totals, nil
}
