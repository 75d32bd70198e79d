package services

import (
	"context"
	"errors"

	"github.com/clockbook/clockbook/server/internal/model"
	"github.com/clockbook/clockbook/server/internal/store"
)

// EntryService orchestrates entry mutations and keeps the owning timesheet's
// hours and status in sync by recomputing them after every successful change.
type EntryService struct {
	store store.Store
}

func NewEntryService(s store.Store) *EntryService {
	return &EntryService{store: s}
}

func (s *EntryService) ListEntries(ctx context.Context, timesheetID string) ([]*model.Entry, error) {
	return s.store.Entries().List(ctx, timesheetID)
}

func (s *EntryService) CreateEntry(ctx context.Context, timesheetID string, p model.EntryPayload) (*model.Entry, error) {
	en, err := s.store.Entries().Create(ctx, timesheetID, p)
	if err != nil {
		return nil, err
	}
	if err := s.Recompute(ctx, timesheetID); err != nil {
		return nil, err
	}
	return en, nil
}

func (s *EntryService) UpdateEntry(ctx context.Context, timesheetID, entryID string, p model.EntryPayload) (*model.Entry, error) {
	en, err := s.store.Entries().Update(ctx, timesheetID, entryID, p)
	if err != nil {
		return nil, err
	}
	if err := s.Recompute(ctx, timesheetID); err != nil {
		return nil, err
	}
	return en, nil
}

func (s *EntryService) DeleteEntry(ctx context.Context, timesheetID, entryID string) (*model.Entry, error) {
	en, err := s.store.Entries().Delete(ctx, timesheetID, entryID)
	if err != nil {
		return nil, err
	}
	if err := s.Recompute(ctx, timesheetID); err != nil {
		return nil, err
	}
	return en, nil
}

// Recompute re-derives the timesheet's total hours and status from the full
// current entry set. It never adjusts incrementally, so repeated calls cannot
// drift. A missing timesheet is a silent no-op: entry mutations have already
// been applied, and the sync-back is best effort.
func (s *EntryService) Recompute(ctx context.Context, timesheetID string) error {
	ts, err := s.store.Timesheets().Get(ctx, timesheetID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		return err
	}

	lst, err := s.store.Entries().List(ctx, timesheetID)
	if err != nil {
		return err
	}
	var total float64
	for _, en := range lst {
		total += en.Hours
	}

	// Full-replace update: resupply the unchanged fields so only hours (and
	// the derived status) move.
	_, err = s.store.Timesheets().Update(ctx, timesheetID, model.TimesheetPayload{
		Week:      ts.Week,
		StartDate: ts.StartDate,
		EndDate:   ts.EndDate,
		Hours:     total,
	})
	return err
}
