package api

import (
	"github.com/gorilla/mux"

	"github.com/clockbook/clockbook/server/internal/api/recovery"
	"github.com/clockbook/clockbook/server/internal/auth"
	"github.com/clockbook/clockbook/server/internal/services"
	"github.com/clockbook/clockbook/server/internal/store"
)

// NewRouter wires all HTTP routes to handlers over the given store. When
// authorizer is non-nil every route except /api/health requires a bearer key.
func NewRouter(st store.Store, authorizer auth.Authorizer) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	// Health stays reachable without credentials.
	healthHandler := NewHealthHandler()
	root.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	apiRouter := root.PathPrefix("/api").Subrouter()
	if authorizer != nil {
		apiRouter.Use(auth.Middleware(authorizer))
	}

	// Timesheets
	timesheetSvc := services.NewTimesheetService(st)
	timesheet := NewTimesheetHandler(timesheetSvc)
	apiRouter.HandleFunc("/timesheets", timesheet.ListTimesheets).Methods("GET")
	apiRouter.HandleFunc("/timesheets", timesheet.CreateTimesheet).Methods("POST")
	apiRouter.HandleFunc("/timesheets/{id}", timesheet.GetTimesheet).Methods("GET")
	apiRouter.HandleFunc("/timesheets/{id}", timesheet.UpdateTimesheet).Methods("PUT")

	// Entries
	entrySvc := services.NewEntryService(st)
	entry := NewEntryHandler(entrySvc, timesheetSvc)
	apiRouter.HandleFunc("/timesheets/{id}/entries", entry.ListEntries).Methods("GET")
	apiRouter.HandleFunc("/timesheets/{id}/entries", entry.CreateEntry).Methods("POST")
	apiRouter.HandleFunc("/timesheets/{id}/entries/{entryId}", entry.UpdateEntry).Methods("PUT")
	apiRouter.HandleFunc("/timesheets/{id}/entries/{entryId}", entry.DeleteEntry).Methods("DELETE")

	return root
}
