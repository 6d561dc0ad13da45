// Package database provides database operations for the rooftop subsidy engine.
package database

import (
	"context"
	"fmt"
	"time"

	"rooftop-subsidy-engine/internal/models"
)

// ProjectRepository handles installation project database operations.
type ProjectRepository struct {
	db Querier
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db Querier) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project.
func (r *ProjectRepository) Create(ctx context.Context, project *models.ProjectCreate) (int64, error) {
	query := `
		INSERT INTO projects (household_id, name, installer, detail, system_type, installation_date, photo_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		project.HouseholdID,
		project.Name,
		project.Installer,
		project.Detail,
		project.SystemType,
		project.InstallationDate,
		project.PhotoKey,
		time.Now().UTC(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create project: %w", err)
	}

	return id, nil
}

// ListByHousehold returns a household's projects, newest first.
func (r *ProjectRepository) ListByHousehold(ctx context.Context, householdID string, limit int) ([]*models.Project, error) {
	query := `
		SELECT id, household_id, name, installer, detail, system_type, installation_date, photo_key, created_at
		FROM projects
		WHERE household_id = $1
		ORDER BY created_at DESC`

	args := []any{householdID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(
			&project.ID,
			&project.HouseholdID,
			&project.Name,
			&project.Installer,
			&project.Detail,
			&project.SystemType,
			&project.InstallationDate,
			&project.PhotoKey,
			&project.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, nil
}

// SetPhotoKey records the storage key of an uploaded project photo.
func (r *ProjectRepository) SetPhotoKey(ctx context.Context, id int64, householdID, photoKey string) error {
	query := `UPDATE projects SET photo_key = $1 WHERE id = $2 AND household_id = $3`

	tag, err := r.db.Exec(ctx, query, photoKey, id, householdID)
	if err != nil {
		return fmt.Errorf("failed to set project photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
