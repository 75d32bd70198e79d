package services

import (
	"context"

	"github.com/clockbook/clockbook/server/internal/model"
	"github.com/clockbook/clockbook/server/internal/store"
)

// TimesheetService orchestrates whole-timesheet use cases.
type TimesheetService struct {
	store store.Store
}

func NewTimesheetService(s store.Store) *TimesheetService {
	return &TimesheetService{store: s}
}

func (s *TimesheetService) ListTimesheets(ctx context.Context, req model.ListTimesheetsRequest) ([]*model.Timesheet, error) {
	return s.store.Timesheets().List(ctx, req)
}

func (s *TimesheetService) GetTimesheet(ctx context.Context, id string) (*model.Timesheet, error) {
	return s.store.Timesheets().Get(ctx, id)
}

func (s *TimesheetService) CreateTimesheet(ctx context.Context, p model.TimesheetPayload) (*model.Timesheet, error) {
	return s.store.Timesheets().Create(ctx, p)
}

func (s *TimesheetService) UpdateTimesheet(ctx context.Context, id string, p model.TimesheetPayload) (*model.Timesheet, error) {
	return s.store.Timesheets().Update(ctx, id, p)
}
