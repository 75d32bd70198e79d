package store

import (
	"context"

	"github.com/clockbook/clockbook/server/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (memory, sqlite, postgres).
type Store interface {
	Timesheets() Timesheets
	Entries() Entries
}

// Timesheets is the repository of weekly timesheet records.
type Timesheets interface {
	// List returns timesheets whose date range overlaps the filter range
	// (inclusive on both ends, open-ended where a bound is omitted) and,
	// when req.Status is set, whose status matches exactly. Results are
	// sorted ascending by week.
	List(ctx context.Context, req model.ListTimesheetsRequest) ([]*model.Timesheet, error)
	Get(ctx context.Context, id string) (*model.Timesheet, error)
	// Create assigns a fresh id, derives status from p.Hours and appends.
	Create(ctx context.Context, p model.TimesheetPayload) (*model.Timesheet, error)
	// Update replaces week/startDate/endDate/hours wholesale and re-derives
	// status. Returns model.ErrNotFound when id does not exist.
	Update(ctx context.Context, id string, p model.TimesheetPayload) (*model.Timesheet, error)
}

// Entries is the repository of per-day entries, scoped by timesheet id.
type Entries interface {
	// List returns the entries of a timesheet in insertion order. It does
	// not verify the timesheet exists; an unknown id yields an empty slice.
	List(ctx context.Context, timesheetID string) ([]*model.Entry, error)
	Create(ctx context.Context, timesheetID string, p model.EntryPayload) (*model.Entry, error)
	Update(ctx context.Context, timesheetID, entryID string, p model.EntryPayload) (*model.Entry, error)
	// Delete removes the entry and returns the deleted record, or
	// model.ErrNotFound when the (timesheetID, entryID) pair is absent.
	Delete(ctx context.Context, timesheetID, entryID string) (*model.Entry, error)
}
