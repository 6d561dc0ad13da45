package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeConsumerSegment(t *testing.T) {
	tests := []struct {
		input    string
		expected ConsumerSegment
	}{
		{"residential", ConsumerSegmentResidential},
		{"Residential", ConsumerSegmentResidential},
		{"  HOUSEHOLD  ", ConsumerSegmentResidential},
		{"domestic", ConsumerSegmentResidential},
		{"agriculture", ConsumerSegmentAgricultural},
		{"farmer", ConsumerSegmentAgricultural},
		{"village", ConsumerSegmentCommunity},
		{"business", ConsumerSegmentCommercial},
		{"industrial", ConsumerSegment("industrial")},
		{"", ConsumerSegment("")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeConsumerSegment(tt.input))
		})
	}
}

func TestConsumerSegmentIsValid(t *testing.T) {
	for _, segment := range ValidConsumerSegments() {
		assert.True(t, segment.IsValid())
	}
	assert.False(t, ConsumerSegment("industrial").IsValid())
	assert.False(t, ConsumerSegment("").IsValid())
}

func TestValidateProfile(t *testing.T) {
	profile := HouseholdProfile{
		State:           "gujarat",
		ConsumerSegment: ConsumerSegmentResidential,
	}
	assert.NoError(t, ValidateProfile(&profile))

	profile.State = "   "
	assert.ErrorIs(t, ValidateProfile(&profile), ErrEmptyState)

	profile.State = "gujarat"
	profile.ConsumerSegment = "industrial"
	assert.ErrorIs(t, ValidateProfile(&profile), ErrInvalidConsumerSegment)
}

func TestValidateHouseholdCreate(t *testing.T) {
	create := HouseholdCreate{
		HouseholdID:     "hh-001",
		State:           "delhi",
		ConsumerSegment: ConsumerSegmentResidential,
	}
	assert.NoError(t, ValidateHouseholdCreate(&create))

	create.HouseholdID = ""
	assert.ErrorIs(t, ValidateHouseholdCreate(&create), ErrEmptyHouseholdID)
}

func TestValidateReminderCreate(t *testing.T) {
	valid := ReminderCreate{
		HouseholdID: "hh-001",
		Name:        "Panel cleaning",
		Category:    "maintenance",
		DueDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		DueTime:     "08:00",
	}
	assert.NoError(t, ValidateReminderCreate(&valid))

	missing := valid
	missing.Name = " "
	assert.ErrorIs(t, ValidateReminderCreate(&missing), ErrEmptyReminderName)

	missing = valid
	missing.Category = ""
	assert.ErrorIs(t, ValidateReminderCreate(&missing), ErrEmptyCategory)

	missing = valid
	missing.DueDate = time.Time{}
	assert.ErrorIs(t, ValidateReminderCreate(&missing), ErrMissingDueDate)
}

func TestValidateEnergyLogCreate(t *testing.T) {
	valid := EnergyLogCreate{
		HouseholdID: "hh-001",
		EntryType:   EnergyEntryGeneration,
		KWh:         12.5,
		EntryDate:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, ValidateEnergyLogCreate(&valid))

	bad := valid
	bad.EntryType = "import"
	assert.ErrorIs(t, ValidateEnergyLogCreate(&bad), ErrInvalidEntryType)

	bad = valid
	bad.KWh = 0
	assert.ErrorIs(t, ValidateEnergyLogCreate(&bad), ErrInvalidKWh)
}

func TestValidateProjectCreate(t *testing.T) {
	valid := ProjectCreate{
		HouseholdID: "hh-001",
		Name:        "3 kW rooftop install",
	}
	assert.NoError(t, ValidateProjectCreate(&valid))

	bad := valid
	bad.Name = ""
	assert.ErrorIs(t, ValidateProjectCreate(&bad), ErrEmptyProjectName)
}

func TestHouseholdProfileConversion(t *testing.T) {
	roof := 28.0
	h := Household{
		ID:              9,
		HouseholdID:     "hh-001",
		State:           "gujarat",
		ConsumerSegment: ConsumerSegmentResidential,
		OwnsProperty:    true,
		IsGridConnected: true,
		RoofAreaSqm:     &roof,
		ProviderID:      "gseb",
	}

	profile := h.Profile()
	assert.Equal(t, "gujarat", profile.State)
	assert.Equal(t, ConsumerSegmentResidential, profile.ConsumerSegment)
	assert.Equal(t, &roof, profile.RoofAreaSqm)
	assert.Equal(t, "gseb", profile.ProviderID)
}
