// Package memory provides the process-memory store backend. It is the
// reference implementation: a single map of timesheets plus per-timesheet
// entry buckets, guarded by one RWMutex. Racing full-replace updates are
// last-write-wins.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/clockbook/clockbook/server/internal/model"
	"github.com/clockbook/clockbook/server/internal/store"
)

// New returns an empty in-memory store.
func New() store.Store {
	return &memStore{
		timesheets: make(map[string]*model.Timesheet),
		entries:    make(map[string][]*model.Entry),
	}
}

type memStore struct {
	mu         sync.RWMutex
	timesheets map[string]*model.Timesheet
	entries    map[string][]*model.Entry
}

func (s *memStore) Timesheets() store.Timesheets { return &timesheets{s} }
func (s *memStore) Entries() store.Entries       { return &entries{s} }

// HealthPing implements health.HealthPinger; process memory is always reachable.
func (s *memStore) HealthPing(ctx context.Context) error { return nil }

// --- Timesheets ---

type timesheets struct{ s *memStore }

func (t *timesheets) List(ctx context.Context, req model.ListTimesheetsRequest) ([]*model.Timesheet, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	res := make([]*model.Timesheet, 0, len(t.s.timesheets))
	for _, ts := range t.s.timesheets {
		// Inclusive interval intersection; canonical YYYY-MM-DD dates
		// compare correctly as strings.
		if req.StartDate != "" && ts.EndDate < req.StartDate {
			continue
		}
		if req.EndDate != "" && ts.StartDate > req.EndDate {
			continue
		}
		if req.Status != "" && ts.Status != req.Status {
			continue
		}
		out := *ts
		res = append(res, &out)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Week < res[j].Week })
	return res, nil
}

func (t *timesheets) Get(ctx context.Context, id string) (*model.Timesheet, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	ts, ok := t.s.timesheets[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := *ts
	return &out, nil
}

func (t *timesheets) Create(ctx context.Context, p model.TimesheetPayload) (*model.Timesheet, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	ts := &model.Timesheet{
		ID:        uuid.New().String(),
		Week:      p.Week,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Hours:     p.Hours,
		Status:    model.ComputeStatus(p.Hours),
	}
	t.s.timesheets[ts.ID] = ts
	out := *ts
	return &out, nil
}

func (t *timesheets) Update(ctx context.Context, id string, p model.TimesheetPayload) (*model.Timesheet, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	ts, ok := t.s.timesheets[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	ts.Week = p.Week
	ts.StartDate = p.StartDate
	ts.EndDate = p.EndDate
	ts.Hours = p.Hours
	ts.Status = model.ComputeStatus(p.Hours)
	out := *ts
	return &out, nil
}

// --- Entries ---

type entries struct{ s *memStore }

func (e *entries) List(ctx context.Context, timesheetID string) ([]*model.Entry, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	bucket := e.s.entries[timesheetID]
	res := make([]*model.Entry, 0, len(bucket))
	for _, en := range bucket {
		out := *en
		res = append(res, &out)
	}
	return res, nil
}

func (e *entries) Create(ctx context.Context, timesheetID string, p model.EntryPayload) (*model.Entry, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	en := &model.Entry{
		EntryID:     uuid.New().String(),
		TimesheetID: timesheetID,
		Date:        p.Date,
		Description: p.Description,
		Project:     p.Project,
		Hours:       p.Hours,
	}
	e.s.entries[timesheetID] = append(e.s.entries[timesheetID], en)
	out := *en
	return &out, nil
}

func (e *entries) Update(ctx context.Context, timesheetID, entryID string, p model.EntryPayload) (*model.Entry, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	for _, en := range e.s.entries[timesheetID] {
		if en.EntryID == entryID {
			en.Date = p.Date
			en.Description = p.Description
			en.Project = p.Project
			en.Hours = p.Hours
			out := *en
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (e *entries) Delete(ctx context.Context, timesheetID, entryID string) (*model.Entry, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	bucket := e.s.entries[timesheetID]
	for i, en := range bucket {
		if en.EntryID == entryID {
			e.s.entries[timesheetID] = append(bucket[:i:i], bucket[i+1:]...)
			out := *en
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}
