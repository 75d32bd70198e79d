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

// TimesheetHandler provides HTTP transport for whole-timesheet operations.
type TimesheetHandler struct {
	timesheetService *services.TimesheetService
}

func NewTimesheetHandler(svc *services.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheetService: svc}
}

// ListTimesheets GET /api/timesheets?startDate=&endDate=&status=
func (h *TimesheetHandler) ListTimesheets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, details := validate.ListFilter(q.Get("startDate"), q.Get("endDate"), q.Get("status"))
	if len(details) > 0 {
		respond.WriteValidationErrors(w, details)
		return
	}

	lst, err := h.timesheetService.ListTimesheets(r.Context(), req)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"timesheets": lst, "count": len(lst)})
}

// GetTimesheet GET /api/timesheets/{id}
func (h *TimesheetHandler) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ts, err := h.timesheetService.GetTimesheet(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "timesheet not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, ts)
}

// CreateTimesheet POST /api/timesheets
func (h *TimesheetHandler) CreateTimesheet(w http.ResponseWriter, r *http.Request) {
	var p model.TimesheetPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if details := validate.TimesheetPayload(p); len(details) > 0 {
		respond.WriteValidationErrors(w, details)
		return
	}

	ts, err := h.timesheetService.CreateTimesheet(r.Context(), p)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, ts)
}

// UpdateTimesheet PUT /api/timesheets/{id}
//
// Full replace: every field of the payload overwrites the stored record and
// status is re-derived from the new hours.
func (h *TimesheetHandler) UpdateTimesheet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var p model.TimesheetPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if details := validate.TimesheetPayload(p); len(details) > 0 {
		respond.WriteValidationErrors(w, details)
		return
	}

	ts, err := h.timesheetService.UpdateTimesheet(r.Context(), id, p)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "timesheet not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, ts)
}
