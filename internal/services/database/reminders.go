// Package database provides database operations for the rooftop subsidy engine.
package database

import (
	"context"
	"fmt"
	"time"

	"rooftop-subsidy-engine/internal/models"
)

// ReminderRepository handles reminder database operations.
type ReminderRepository struct {
	db Querier
}

// NewReminderRepository creates a new reminder repository.
func NewReminderRepository(db Querier) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create inserts a new reminder.
func (r *ReminderRepository) Create(ctx context.Context, reminder *models.ReminderCreate) (int64, error) {
	query := `
		INSERT INTO reminders (household_id, name, category, detail, due_date, due_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		reminder.HouseholdID,
		reminder.Name,
		reminder.Category,
		reminder.Detail,
		reminder.DueDate,
		reminder.DueTime,
		time.Now().UTC(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create reminder: %w", err)
	}

	return id, nil
}

// ListByHousehold returns a household's reminders ordered by due date and time.
func (r *ReminderRepository) ListByHousehold(ctx context.Context, householdID string) ([]*models.Reminder, error) {
	query := `
		SELECT id, household_id, name, category, detail, due_date, due_time, created_at
		FROM reminders
		WHERE household_id = $1
		ORDER BY due_date, due_time`

	rows, err := r.db.Query(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	reminders := make([]*models.Reminder, 0)
	for rows.Next() {
		var reminder models.Reminder
		if err := rows.Scan(
			&reminder.ID,
			&reminder.HouseholdID,
			&reminder.Name,
			&reminder.Category,
			&reminder.Detail,
			&reminder.DueDate,
			&reminder.DueTime,
			&reminder.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, &reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reminders: %w", err)
	}

	return reminders, nil
}

// Delete removes a reminder owned by the given household.
func (r *ReminderRepository) Delete(ctx context.Context, id int64, householdID string) error {
	query := `DELETE FROM reminders WHERE id = $1 AND household_id = $2`

	tag, err := r.db.Exec(ctx, query, id, householdID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
