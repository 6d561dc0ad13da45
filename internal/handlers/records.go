// Package handlers provides the HTTP API for the rooftop subsidy engine.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"rooftop-subsidy-engine/internal/models"
)

func (s *Server) householdsHandler(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		householdID := householdIDParam(r)
		if householdID == "" {
			writeError(w, http.StatusBadRequest, "household_id is required")
			return
		}
		household, err := s.households.GetByHouseholdID(r.Context(), householdID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Household not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to load household")
			return
		}
		writeJSON(w, http.StatusOK, Response{Success: true, Data: household})

	case http.MethodPost:
		var req models.HouseholdCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.ConsumerSegment = models.NormalizeConsumerSegment(string(req.ConsumerSegment))
		if err := models.ValidateHouseholdCreate(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		id, err := s.households.Upsert(r.Context(), &req)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save household")
			return
		}
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Household saved",
			Data:    map[string]int64{"id": id},
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) remindersHandler(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		householdID := householdIDParam(r)
		if householdID == "" {
			writeError(w, http.StatusBadRequest, "household_id is required")
			return
		}
		reminders, err := s.reminders.ListByHousehold(r.Context(), householdID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list reminders")
			return
		}
		writeJSON(w, http.StatusOK, Response{Success: true, Data: reminders})

	case http.MethodPost:
		var req models.ReminderCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Detail = strings.TrimSpace(req.Detail)
		if err := models.ValidateReminderCreate(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		id, err := s.reminders.Create(r.Context(), &req)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save reminder")
			return
		}
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Reminder saved and scheduled",
			Data:    map[string]int64{"id": id},
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) deleteReminderHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if !s.requireDB(w) {
		return
	}

	var req struct {
		ID          int64  `json:"id"`
		HouseholdID string `json:"household_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.reminders.Delete(r.Context(), req.ID, req.HouseholdID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Reminder not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete reminder")
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Reminder removed"})
}

func (s *Server) trackerHandler(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		householdID := householdIDParam(r)
		if householdID == "" {
			writeError(w, http.StatusBadRequest, "household_id is required")
			return
		}
		logs, err := s.energy.ListByHousehold(r.Context(), householdID, 0)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list tracker entries")
			return
		}
		totals, err := s.energy.Totals(r.Context(), householdID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to aggregate tracker entries")
			return
		}
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Data: map[string]interface{}{
				"logs":   logs,
				"totals": totals,
			},
		})

	case http.MethodPost:
		var req models.EnergyLogCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := models.ValidateEnergyLogCreate(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		id, err := s.energy.Create(r.Context(), &req)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save tracker entry")
			return
		}
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Tracker entry saved",
			Data:    map[string]int64{"id": id},
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) profileHealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if !s.requireDB(w) {
		return
	}

	householdID := householdIDParam(r)
	if householdID == "" {
		writeError(w, http.StatusBadRequest, "household_id is required")
		return
	}

	stats, err := s.health.ListStats(r.Context(), householdID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list health stats")
		return
	}
	logs, err := s.health.ListLogs(r.Context(), householdID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list health logs")
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"stats": stats,
			"logs":  logs,
		},
	})
}

func (s *Server) healthStatHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if !s.requireDB(w) {
		return
	}

	var req struct {
		HouseholdID string `json:"household_id"`
		Label       string `json:"label"`
		Value       string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Label = strings.TrimSpace(req.Label)
	req.Value = strings.TrimSpace(req.Value)
	if req.HouseholdID == "" {
		writeError(w, http.StatusBadRequest, models.ErrEmptyHouseholdID.Error())
		return
	}
	if req.Label == "" || req.Value == "" {
		writeError(w, http.StatusBadRequest, models.ErrEmptyLabel.Error())
		return
	}

	id, err := s.health.CreateStat(r.Context(), req.HouseholdID, req.Label, req.Value)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save health metric")
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Health metric saved",
		Data:    map[string]int64{"id": id},
	})
}

func (s *Server) healthLogHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if !s.requireDB(w) {
		return
	}

	var req struct {
		HouseholdID string `json:"household_id"`
		Note        string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Note = strings.TrimSpace(req.Note)
	if req.HouseholdID == "" {
		writeError(w, http.StatusBadRequest, models.ErrEmptyHouseholdID.Error())
		return
	}
	if req.Note == "" {
		writeError(w, http.StatusBadRequest, models.ErrEmptyNote.Error())
		return
	}

	id, err := s.health.CreateLog(r.Context(), req.HouseholdID, req.Note)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save health note")
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Health note recorded",
		Data:    map[string]int64{"id": id},
	})
}

func (s *Server) projectsHandler(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		householdID := householdIDParam(r)
		if householdID == "" {
			writeError(w, http.StatusBadRequest, "household_id is required")
			return
		}
		projects, err := s.projects.ListByHousehold(r.Context(), householdID, 0)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list projects")
			return
		}
		writeJSON(w, http.StatusOK, Response{Success: true, Data: projects})

	case http.MethodPost:
		var req models.ProjectCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if err := models.ValidateProjectCreate(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		id, err := s.projects.Create(r.Context(), &req)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save project")
			return
		}
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Project saved",
			Data:    map[string]int64{"id": id},
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// projectPhotoURLHandler issues a presigned upload URL for a project photo
// and records the resulting key on the project.
func (s *Server) projectPhotoURLHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if !s.requireDB(w) {
		return
	}
	if s.photos == nil {
		writeError(w, http.StatusServiceUnavailable, "Photo storage not available")
		return
	}

	var req struct {
		ProjectID   int64  `json:"project_id"`
		HouseholdID string `json:"household_id"`
		ContentType string `json:"content_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ContentType == "" {
		req.ContentType = "image/jpeg"
	}

	key := fmt.Sprintf("projects/%s/%d/%s", req.HouseholdID, req.ProjectID, uuid.NewString())

	result, err := s.photos.PresignUpload(r.Context(), key, req.ContentType, 15)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}

	if err := s.projects.SetPhotoKey(r.Context(), req.ProjectID, req.HouseholdID, key); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to record photo key")
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// projectPhotoViewHandler issues a presigned download URL for a stored
// project photo key.
func (s *Server) projectPhotoViewHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if s.photos == nil {
		writeError(w, http.StatusServiceUnavailable, "Photo storage not available")
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	result, err := s.photos.PresignDownload(r.Context(), key, 15)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate download URL")
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: result})
}
