// Package models defines the data structures for the rooftop subsidy engine.
package models

import (
	"time"
)

// Reminder is a dated task tracked per household.
type Reminder struct {
	ID          int64     `json:"id" db:"id"`
	HouseholdID string    `json:"household_id" db:"household_id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Detail      string    `json:"detail,omitempty" db:"detail"`
	DueDate     time.Time `json:"due_date" db:"due_date"`
	DueTime     string    `json:"due_time" db:"due_time"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ReminderCreate represents the data needed to create a reminder.
type ReminderCreate struct {
	HouseholdID string    `json:"household_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=140"`
	Category    string    `json:"category" validate:"required,min=1,max=80"`
	Detail      string    `json:"detail,omitempty"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	DueTime     string    `json:"due_time" validate:"required"`
}

// EnergyEntryType distinguishes generated from exported energy.
type EnergyEntryType string

const (
	EnergyEntryGeneration EnergyEntryType = "generation"
	EnergyEntryExport     EnergyEntryType = "export"
)

// IsValid checks if the energy entry type is valid.
func (t EnergyEntryType) IsValid() bool {
	return t == EnergyEntryGeneration || t == EnergyEntryExport
}

// EnergyLog is a single generation or export reading for a household.
type EnergyLog struct {
	ID          int64           `json:"id" db:"id"`
	HouseholdID string          `json:"household_id" db:"household_id"`
	EntryType   EnergyEntryType `json:"entry_type" db:"entry_type"`
	KWh         float64         `json:"kwh" db:"kwh"`
	RevenueINR  *float64        `json:"revenue_inr,omitempty" db:"revenue_inr"`
	PanelID     string          `json:"panel_id,omitempty" db:"panel_id"`
	EntryDate   time.Time       `json:"entry_date" db:"entry_date"`
	Note        string          `json:"note,omitempty" db:"note"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// EnergyLogCreate represents the data needed to record an energy entry.
type EnergyLogCreate struct {
	HouseholdID string          `json:"household_id" validate:"required"`
	EntryType   EnergyEntryType `json:"entry_type" validate:"required"`
	KWh         float64         `json:"kwh" validate:"required,gt=0"`
	RevenueINR  *float64        `json:"revenue_inr,omitempty"`
	PanelID     string          `json:"panel_id,omitempty"`
	EntryDate   time.Time       `json:"entry_date" validate:"required"`
	Note        string          `json:"note,omitempty"`
}

// EnergyTotals aggregates a household's tracker entries.
type EnergyTotals struct {
	GenerationKWh float64 `json:"generation_kwh"`
	ExportKWh     float64 `json:"export_kwh"`
	RevenueINR    float64 `json:"revenue_inr"`
}

// HealthStat is a labelled metric tracked on the household profile page.
type HealthStat struct {
	ID          int64     `json:"id" db:"id"`
	HouseholdID string    `json:"household_id" db:"household_id"`
	Label       string    `json:"label" db:"label"`
	Value       string    `json:"value" db:"value"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// HealthLog is a free-text note tracked on the household profile page.
type HealthLog struct {
	ID          int64     `json:"id" db:"id"`
	HouseholdID string    `json:"household_id" db:"household_id"`
	Note        string    `json:"note" db:"note"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Project is an installation record for a household.
type Project struct {
	ID               int64      `json:"id" db:"id"`
	HouseholdID      string     `json:"household_id" db:"household_id"`
	Name             string     `json:"name" db:"name"`
	Installer        string     `json:"installer,omitempty" db:"installer"`
	Detail           string     `json:"detail,omitempty" db:"detail"`
	SystemType       string     `json:"system_type,omitempty" db:"system_type"`
	InstallationDate *time.Time `json:"installation_date,omitempty" db:"installation_date"`
	PhotoKey         string     `json:"photo_key,omitempty" db:"photo_key"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

// ProjectCreate represents the data needed to create a project.
type ProjectCreate struct {
	HouseholdID      string     `json:"household_id" validate:"required"`
	Name             string     `json:"name" validate:"required,min=1,max=160"`
	Installer        string     `json:"installer,omitempty"`
	Detail           string     `json:"detail,omitempty"`
	SystemType       string     `json:"system_type,omitempty"`
	InstallationDate *time.Time `json:"installation_date,omitempty"`
	PhotoKey         string     `json:"photo_key,omitempty"`
}
