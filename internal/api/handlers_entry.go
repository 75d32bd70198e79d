package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clockbook/clockbook/server/internal/api/respond"
	"github.com/clockbook/clockbook/server/internal/api/validate"
	"github.com/clockbook/clockbook/server/internal/model"
	"github.com/clockbook/clockbook/server/internal/services"
)

// EntryHandler provides HTTP transport for per-day entry operations.
// Every route is scoped under a timesheet id; the handler rejects unknown
// timesheets with 404 before touching the entry repository.
type EntryHandler struct {
	entryService     *services.EntryService
	timesheetService *services.TimesheetService
}

func NewEntryHandler(entries *services.EntryService, timesheets *services.TimesheetService) *EntryHandler {
	return &EntryHandler{entryService: entries, timesheetService: timesheets}
}

// requireTimesheet writes a 404 and returns false when the timesheet is absent.
func (h *EntryHandler) requireTimesheet(w http.ResponseWriter, r *http.Request, id string) bool {
	_, err := h.timesheetService.GetTimesheet(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "timesheet not found")
		} else {
			respond.WriteInternalError(w, err.Error())
		}
		return false
	}
	return true
}

// ListEntries GET /api/timesheets/{id}/entries
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.requireTimesheet(w, r, id) {
		return
	}

	lst, err := h.entryService.ListEntries(r.Context(), id)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"entries": lst, "count": len(lst)})
}

// CreateEntry POST /api/timesheets/{id}/entries
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.requireTimesheet(w, r, id) {
		return
	}

	var p model.EntryPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if details := validate.EntryPayload(p); len(details) > 0 {
		respond.WriteValidationErrors(w, details)
		return
	}

	en, err := h.entryService.CreateEntry(r.Context(), id, p)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, en)
}

// UpdateEntry PUT /api/timesheets/{id}/entries/{entryId}
func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	entryID := vars["entryId"]
	if !h.requireTimesheet(w, r, id) {
		return
	}

	var p model.EntryPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if details := validate.EntryPayload(p); len(details) > 0 {
		respond.WriteValidationErrors(w, details)
		return
	}

	en, err := h.entryService.UpdateEntry(r.Context(), id, entryID, p)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "entry not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, en)
}

// DeleteEntry DELETE /api/timesheets/{id}/entries/{entryId}
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	entryID := vars["entryId"]
	if !h.requireTimesheet(w, r, id) {
		return
	}

	en, err := h.entryService.DeleteEntry(r.Context(), id, entryID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "entry not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, en)
}
