package database

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rooftop-subsidy-engine/internal/models"
)

func TestHouseholdRepository_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHouseholdRepository(mock)

	roof := 32.0
	annual := 2400.0
	mock.ExpectQuery(`INSERT INTO households`).
		WithArgs("hh-001", "gujarat", "residential", true, true, &roof, &annual, (*float64)(nil), "gseb", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))

	id, err := repo.Upsert(context.Background(), &models.HouseholdCreate{
		HouseholdID:          "hh-001",
		State:                "gujarat",
		ConsumerSegment:      models.ConsumerSegmentResidential,
		OwnsProperty:         true,
		IsGridConnected:      true,
		RoofAreaSqm:          &roof,
		AnnualConsumptionKWh: &annual,
		ProviderID:           "gseb",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHouseholdRepository_GetByHouseholdIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHouseholdRepository(mock)

	mock.ExpectQuery(`FROM households`).
		WithArgs("hh-missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByHouseholdID(context.Background(), "hh-missing")

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHouseholdRepository_SaveEstimateSnapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHouseholdRepository(mock)

	mock.ExpectExec(`INSERT INTO estimate_snapshots`).
		WithArgs("hh-001", 3.0, 117000.0, 78000.0, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.SaveEstimateSnapshot(context.Background(), &models.EstimateSnapshot{
		HouseholdID:         "hh-001",
		SystemSizeKW:        3.0,
		NetCostINR:          117000.0,
		EstimatedSavingsINR: 78000.0,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHouseholdRepository_GetEstimateSnapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHouseholdRepository(mock)

	updated := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"household_id", "system_size_kw", "net_cost_inr", "estimated_savings_inr", "updated_at"}).
		AddRow("hh-001", 3.0, 117000.0, 78000.0, updated)
	mock.ExpectQuery(`FROM estimate_snapshots`).
		WithArgs("hh-001").
		WillReturnRows(rows)

	snap, err := repo.GetEstimateSnapshot(context.Background(), "hh-001")

	require.NoError(t, err)
	assert.InDelta(t, 3.0, snap.SystemSizeKW, 1e-9)
	assert.InDelta(t, 117000.0, snap.NetCostINR, 1e-9)
	assert.Equal(t, updated, snap.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHouseholdRepository_GetEstimateSnapshotNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHouseholdRepository(mock)

	mock.ExpectQuery(`FROM estimate_snapshots`).
		WithArgs("hh-missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetEstimateSnapshot(context.Background(), "hh-missing")

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
