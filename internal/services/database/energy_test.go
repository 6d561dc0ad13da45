package database

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rooftop-subsidy-engine/internal/models"
)

func TestEnergyRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEnergyRepository(mock)

	entryDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	revenue := 42.5
	mock.ExpectQuery(`INSERT INTO energy_logs`).
		WithArgs("hh-001", "export", 12.4, &revenue, "panel-2", entryDate, "evening export", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	id, err := repo.Create(context.Background(), &models.EnergyLogCreate{
		HouseholdID: "hh-001",
		EntryType:   models.EnergyEntryExport,
		KWh:         12.4,
		RevenueINR:  &revenue,
		PanelID:     "panel-2",
		EntryDate:   entryDate,
		Note:        "evening export",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnergyRepository_ListByHousehold(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEnergyRepository(mock)

	now := time.Now().UTC()
	entryDate := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "household_id", "entry_type", "kwh", "revenue_inr", "panel_id", "entry_date", "note", "created_at"}).
		AddRow(int64(3), "hh-001", models.EnergyEntryGeneration, 18.2, (*float64)(nil), "", entryDate, "", now)

	mock.ExpectQuery(`SELECT id, household_id, entry_type, kwh, revenue_inr, panel_id, entry_date, note, created_at`).
		WithArgs("hh-001", 3).
		WillReturnRows(rows)

	logs, err := repo.ListByHousehold(context.Background(), "hh-001", 3)

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.EnergyEntryGeneration, logs[0].EntryType)
	assert.InDelta(t, 18.2, logs[0].KWh, 1e-9)
	assert.Nil(t, logs[0].RevenueINR)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnergyRepository_ListByHouseholdNoLimit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEnergyRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "household_id", "entry_type", "kwh", "revenue_inr", "panel_id", "entry_date", "note", "created_at"})
	mock.ExpectQuery(`ORDER BY entry_date DESC, created_at DESC$`).
		WithArgs("hh-001").
		WillReturnRows(rows)

	logs, err := repo.ListByHousehold(context.Background(), "hh-001", 0)

	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnergyRepository_Totals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEnergyRepository(mock)

	rows := pgxmock.NewRows([]string{"generation", "export", "revenue"}).
		AddRow(132.6, 41.0, 287.5)
	mock.ExpectQuery(`FROM energy_logs`).
		WithArgs("hh-001").
		WillReturnRows(rows)

	totals, err := repo.Totals(context.Background(), "hh-001")

	require.NoError(t, err)
	assert.InDelta(t, 132.6, totals.GenerationKWh, 1e-9)
	assert.InDelta(t, 41.0, totals.ExportKWh, 1e-9)
	assert.InDelta(t, 287.5, totals.RevenueINR, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}
