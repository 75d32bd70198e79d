package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/clockbook/clockbook/server/internal/model"
)

// dateLayout is the canonical wire form for all dates. Storing and comparing
// dates in this form keeps lexicographic and chronological order identical.
const dateLayout = "2006-01-02"

// Date checks that v is a parseable YYYY-MM-DD date.
func Date(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		return fmt.Errorf("%s must be a valid YYYY-MM-DD date", field)
	}
	return nil
}

// NonBlank checks that v is non-empty after trimming whitespace.
func NonBlank(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// HoursRange checks that v lies within [0, max].
func HoursRange(field string, v, max float64) error {
	if v != v { // NaN
		return fmt.Errorf("%s must be a number", field)
	}
	if v < 0 || v > max {
		return fmt.Errorf("%s must be between 0 and %g", field, max)
	}
	return nil
}

// -------- Request specific helpers ----------

// TimesheetPayload validates a whole-timesheet create/update payload and
// returns every violation, not just the first. An empty slice means valid.
func TimesheetPayload(p model.TimesheetPayload) []string {
	var errs []string
	if p.Week <= 0 {
		errs = append(errs, "week must be a positive integer")
	}
	datesOK := true
	if err := Date("startDate", p.StartDate); err != nil {
		errs = append(errs, err.Error())
		datesOK = false
	}
	if err := Date("endDate", p.EndDate); err != nil {
		errs = append(errs, err.Error())
		datesOK = false
	}
	if datesOK && p.StartDate > p.EndDate {
		errs = append(errs, "startDate must be on or before endDate")
	}
	if err := HoursRange("hours", p.Hours, 168); err != nil {
		errs = append(errs, err.Error())
	}
	return errs
}

// EntryPayload validates an entry create/update payload.
func EntryPayload(p model.EntryPayload) []string {
	var errs []string
	if err := Date("date", p.Date); err != nil {
		errs = append(errs, err.Error())
	}
	if err := NonBlank("description", p.Description); err != nil {
		errs = append(errs, err.Error())
	}
	if err := NonBlank("project", p.Project); err != nil {
		errs = append(errs, err.Error())
	}
	if err := HoursRange("hours", p.Hours, 24); err != nil {
		errs = append(errs, err.Error())
	}
	return errs
}

// ListFilter validates the optional list query parameters and assembles the
// repository request. Unknown status values are rejected rather than treated
// as an empty match.
func ListFilter(startDate, endDate, status string) (model.ListTimesheetsRequest, []string) {
	var errs []string
	if startDate != "" {
		if err := Date("startDate", startDate); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if endDate != "" {
		if err := Date("endDate", endDate); err != nil {
			errs = append(errs, err.Error())
		}
	}
	st := model.Status(status)
	if status != "" && !st.Valid() {
		errs = append(errs, "status must be one of COMPLETED, INCOMPLETE, MISSING")
	}
	if len(errs) > 0 {
		return model.ListTimesheetsRequest{}, errs
	}
	return model.ListTimesheetsRequest{StartDate: startDate, EndDate: endDate, Status: st}, nil
}
