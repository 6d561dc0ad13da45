// Package database provides database operations for the rooftop subsidy engine.
package database

import (
	"context"
	"fmt"
	"time"

	"rooftop-subsidy-engine/internal/models"
)

// HealthRepository handles health metric database operations.
type HealthRepository struct {
	db Querier
}

// NewHealthRepository creates a new health repository.
func NewHealthRepository(db Querier) *HealthRepository {
	return &HealthRepository{db: db}
}

// CreateStat inserts a labelled health metric.
func (r *HealthRepository) CreateStat(ctx context.Context, householdID, label, value string) (int64, error) {
	query := `
		INSERT INTO health_stats (household_id, label, value, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query, householdID, label, value, time.Now().UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create health stat: %w", err)
	}

	return id, nil
}

// CreateLog inserts a free-text health note.
func (r *HealthRepository) CreateLog(ctx context.Context, householdID, note string) (int64, error) {
	query := `
		INSERT INTO health_logs (household_id, note, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query, householdID, note, time.Now().UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create health log: %w", err)
	}

	return id, nil
}

// ListStats returns a household's health metrics, newest first.
func (r *HealthRepository) ListStats(ctx context.Context, householdID string) ([]*models.HealthStat, error) {
	query := `
		SELECT id, household_id, label, value, created_at
		FROM health_stats
		WHERE household_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list health stats: %w", err)
	}
	defer rows.Close()

	stats := make([]*models.HealthStat, 0)
	for rows.Next() {
		var stat models.HealthStat
		if err := rows.Scan(&stat.ID, &stat.HouseholdID, &stat.Label, &stat.Value, &stat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan health stat: %w", err)
		}
		stats = append(stats, &stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read health stats: %w", err)
	}

	return stats, nil
}

// ListLogs returns a household's health notes, newest first.
func (r *HealthRepository) ListLogs(ctx context.Context, householdID string) ([]*models.HealthLog, error) {
	query := `
		SELECT id, household_id, note, created_at
		FROM health_logs
		WHERE household_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list health logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.HealthLog, 0)
	for rows.Next() {
		var log models.HealthLog
		if err := rows.Scan(&log.ID, &log.HouseholdID, &log.Note, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan health log: %w", err)
		}
		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read health logs: %w", err)
	}

	return logs, nil
}
