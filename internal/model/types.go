package model

// Timesheet is a weekly record of logged hours with a derived status.
type Timesheet struct {
	ID        string  `json:"id"`
	Week      int     `json:"week"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Hours     float64 `json:"hours"`
	Status    Status  `json:"status"`
}

// Entry is a single day/task line item belonging to one timesheet.
type Entry struct {
	EntryID     string  `json:"id"`
	TimesheetID string  `json:"timesheetId"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Project     string  `json:"project"`
	Hours       float64 `json:"hours"`
}

// TimesheetPayload carries the caller-supplied fields of a timesheet.
// Status is never part of the payload; it is always derived from Hours.
type TimesheetPayload struct {
	Week      int     `json:"week"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Hours     float64 `json:"hours"`
}

// EntryPayload carries the caller-supplied fields of an entry.
type EntryPayload struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Project     string  `json:"project"`
	Hours       float64 `json:"hours"`
}

// ListTimesheetsRequest captures filters used when listing timesheets.
// Empty fields are open-ended: a timesheet matches when its
// [StartDate, EndDate] interval intersects the filter interval and,
// if Status is set, its status equals it exactly.
type ListTimesheetsRequest struct {
	StartDate string
	EndDate   string
	Status    Status
}
