package model

// Status is the derived completion state of a timesheet.
type Status string

const (
	StatusCompleted  Status = "COMPLETED"
	StatusIncomplete Status = "INCOMPLETE"
	StatusMissing    Status = "MISSING"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusIncomplete, StatusMissing:
		return true
	}
	return false
}

// ComputeStatus derives a timesheet status from accumulated hours.
// Negative input falls through to MISSING; the function never fails.
func ComputeStatus(hours float64) Status {
	if hours >= 40 {
		return StatusCompleted
	}
	if hours > 0 {
		return StatusIncomplete
	}
	return StatusMissing
}
