// Package models defines the data structures for the rooftop subsidy engine.
package models

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrInvalidSystemSize      = errors.New("system size must be a finite non-negative number")
	ErrInvalidCostPerKW       = errors.New("cost per kW must be a finite non-negative number")
	ErrInvalidConsumerSegment = errors.New("invalid consumer segment")
	ErrEmptyState             = errors.New("state cannot be empty")
	ErrEmptyHouseholdID       = errors.New("household_id cannot be empty")
	ErrInvalidEntryType       = errors.New("entry type must be generation or export")
	ErrInvalidKWh             = errors.New("kwh must be positive")
	ErrEmptyReminderName      = errors.New("reminder name cannot be empty")
	ErrEmptyCategory          = errors.New("reminder category cannot be empty")
	ErrMissingDueDate         = errors.New("reminder due date is required")
	ErrEmptyNote              = errors.New("note cannot be empty")
	ErrEmptyLabel             = errors.New("label and value cannot be empty")
	ErrEmptyProjectName       = errors.New("project name cannot be empty")
	ErrNotFound               = errors.New("record not found")
)

// NormalizeConsumerSegment converts free-form segment input to a standard value.
func NormalizeConsumerSegment(segment string) ConsumerSegment {
	normalized := strings.ToLower(strings.TrimSpace(segment))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	segmentMap := map[string]ConsumerSegment{
		"residential":  ConsumerSegmentResidential,
		"household":    ConsumerSegmentResidential,
		"domestic":     ConsumerSegmentResidential,
		"agricultural": ConsumerSegmentAgricultural,
		"agriculture":  ConsumerSegmentAgricultural,
		"farm":         ConsumerSegmentAgricultural,
		"farmer":       ConsumerSegmentAgricultural,
		"community":    ConsumerSegmentCommunity,
		"village":      ConsumerSegmentCommunity,
		"commercial":   ConsumerSegmentCommercial,
		"business":     ConsumerSegmentCommercial,
		"shop":         ConsumerSegmentCommercial,
	}

	if mapped, ok := segmentMap[normalized]; ok {
		return mapped
	}

	// Return as-is if no mapping found (will fail validation)
	return ConsumerSegment(normalized)
}

// ValidateProfile validates an engine input profile.
func ValidateProfile(p *HouseholdProfile) error {
	if strings.TrimSpace(p.State) == "" {
		return ErrEmptyState
	}
	if !p.ConsumerSegment.IsValid() {
		return ErrInvalidConsumerSegment
	}
	return nil
}

// ValidateHouseholdCreate validates household creation data.
func ValidateHouseholdCreate(h *HouseholdCreate) error {
	if strings.TrimSpace(h.HouseholdID) == "" {
		return ErrEmptyHouseholdID
	}
	if strings.TrimSpace(h.State) == "" {
		return ErrEmptyState
	}
	if !h.ConsumerSegment.IsValid() {
		return ErrInvalidConsumerSegment
	}
	return nil
}

// ValidateReminderCreate validates reminder creation data.
func ValidateReminderCreate(r *ReminderCreate) error {
	if strings.TrimSpace(r.HouseholdID) == "" {
		return ErrEmptyHouseholdID
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyReminderName
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if r.DueDate.IsZero() {
		return ErrMissingDueDate
	}
	return nil
}

// ValidateEnergyLogCreate validates tracker entry data.
func ValidateEnergyLogCreate(e *EnergyLogCreate) error {
	if strings.TrimSpace(e.HouseholdID) == "" {
		return ErrEmptyHouseholdID
	}
	if !e.EntryType.IsValid() {
		return ErrInvalidEntryType
	}
	if e.KWh <= 0 {
		return ErrInvalidKWh
	}
	return nil
}

// ValidateProjectCreate validates project creation data.
func ValidateProjectCreate(p *ProjectCreate) error {
	if strings.TrimSpace(p.HouseholdID) == "" {
		return ErrEmptyHouseholdID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProjectName
	}
	return nil
}
