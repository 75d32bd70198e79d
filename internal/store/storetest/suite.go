package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/clockbook/clockbook/server/internal/model"
	"github.com/clockbook/clockbook/server/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("TimesheetCreateGetRoundTrip", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		created, err := s.Timesheets().Create(ctx, model.TimesheetPayload{
			Week: 9, StartDate: "2024-03-01", EndDate: "2024-03-05", Hours: 40,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("Create: empty id")
		}
		if created.Status != model.StatusCompleted {
			t.Fatalf("Create: status=%s, want COMPLETED", created.Status)
		}
		got, err := s.Timesheets().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.ID != created.ID || got.Week != 9 || got.Hours != 40 || got.Status != model.StatusCompleted {
			t.Fatalf("Get after Create: got=%+v", got)
		}
	})

	t.Run("TimesheetGetNotFound", func(t *testing.T) {
		s := makeStore(t)
		if _, err := s.Timesheets().Get(context.Background(), "nonexistent-id"); !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("Get unknown id: err=%v, want ErrNotFound", err)
		}
	})

	t.Run("TimesheetUpdateNotFoundCreatesNothing", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		_, err := s.Timesheets().Update(ctx, "nonexistent-id", model.TimesheetPayload{
			Week: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Hours: 10,
		})
		if !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("Update unknown id: err=%v, want ErrNotFound", err)
		}
		lst, err := s.Timesheets().List(ctx, model.ListTimesheetsRequest{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(lst) != 0 {
			t.Fatalf("Update must not create records, found %d", len(lst))
		}
	})

	t.Run("TimesheetUpdateReplacesAndRederivesStatus", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		created, err := s.Timesheets().Create(ctx, model.TimesheetPayload{
			Week: 2, StartDate: "2024-01-08", EndDate: "2024-01-12", Hours: 40,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		updated, err := s.Timesheets().Update(ctx, created.ID, model.TimesheetPayload{
			Week: 3, StartDate: "2024-01-15", EndDate: "2024-01-19", Hours: 12,
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.ID != created.ID {
			t.Fatalf("Update changed id: %s -> %s", created.ID, updated.ID)
		}
		if updated.Week != 3 || updated.StartDate != "2024-01-15" || updated.EndDate != "2024-01-19" || updated.Hours != 12 {
			t.Fatalf("Update did not replace all fields: %+v", updated)
		}
		if updated.Status != model.StatusIncomplete {
			t.Fatalf("Update status=%s, want INCOMPLETE", updated.Status)
		}
	})

	t.Run("TimesheetListSortedByWeek", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		for _, w := range []int{3, 1, 2} {
			if _, err := s.Timesheets().Create(ctx, model.TimesheetPayload{
				Week: w, StartDate: "2024-02-01", EndDate: "2024-02-05", Hours: 8,
			}); err != nil {
				t.Fatalf("Create week %d: %v", w, err)
			}
		}
		lst, err := s.Timesheets().List(ctx, model.ListTimesheetsRequest{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(lst) != 3 {
			t.Fatalf("List: n=%d, want 3", len(lst))
		}
		for i, want := range []int{1, 2, 3} {
			if lst[i].Week != want {
				t.Fatalf("List order: got week %d at %d, want %d", lst[i].Week, i, want)
			}
		}
	})

	t.Run("TimesheetListOverlapFilter", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		seedWeeks(t, s)

		lst, err := s.Timesheets().List(ctx, model.ListTimesheetsRequest{
			StartDate: "2024-01-10", EndDate: "2024-01-20",
		})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		assertWeeks(t, lst, 2, 3)

		// Open-ended on the left: everything ending on/after the 10th.
		lst, err = s.Timesheets().List(ctx, model.ListTimesheetsRequest{StartDate: "2024-01-10"})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		assertWeeks(t, lst, 2, 3)

		// Open-ended on the right: everything starting on/before the 8th.
		lst, err = s.Timesheets().List(ctx, model.ListTimesheetsRequest{EndDate: "2024-01-08"})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		assertWeeks(t, lst, 1, 2)

		// Boundary touch counts as overlap (inclusive intersection).
		lst, err = s.Timesheets().List(ctx, model.ListTimesheetsRequest{
			StartDate: "2024-01-05", EndDate: "2024-01-05",
		})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		assertWeeks(t, lst, 1)
	})

	t.Run("TimesheetListStatusComposesWithDates", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		seedWeeks(t, s)

		lst, err := s.Timesheets().List(ctx, model.ListTimesheetsRequest{
			StartDate: "2024-01-10", EndDate: "2024-01-20", Status: model.StatusCompleted,
		})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		assertWeeks(t, lst, 2)

		lst, err = s.Timesheets().List(ctx, model.ListTimesheetsRequest{Status: model.StatusIncomplete})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		assertWeeks(t, lst, 3)
	})

	t.Run("EntryListUnknownTimesheetIsEmpty", func(t *testing.T) {
		s := makeStore(t)
		lst, err := s.Entries().List(context.Background(), "no-such-timesheet")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(lst) != 0 {
			t.Fatalf("List unknown timesheet: n=%d, want 0", len(lst))
		}
	})

	t.Run("EntryCRUD", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		ts, err := s.Timesheets().Create(ctx, model.TimesheetPayload{
			Week: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Hours: 0,
		})
		if err != nil {
			t.Fatalf("Create timesheet: %v", err)
		}

		e1, err := s.Entries().Create(ctx, ts.ID, model.EntryPayload{
			Date: "2024-01-01", Description: "standup", Project: "ops", Hours: 1,
		})
		if err != nil {
			t.Fatalf("Create e1: %v", err)
		}
		if e1.EntryID == "" || e1.TimesheetID != ts.ID {
			t.Fatalf("Create e1: %+v", e1)
		}
		e2, err := s.Entries().Create(ctx, ts.ID, model.EntryPayload{
			Date: "2024-01-02", Description: "feature work", Project: "core", Hours: 6,
		})
		if err != nil {
			t.Fatalf("Create e2: %v", err)
		}

		// Insertion order preserved.
		lst, err := s.Entries().List(ctx, ts.ID)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(lst) != 2 || lst[0].EntryID != e1.EntryID || lst[1].EntryID != e2.EntryID {
			t.Fatalf("List order: %+v", lst)
		}

		// Full-field replace on update.
		upd, err := s.Entries().Update(ctx, ts.ID, e1.EntryID, model.EntryPayload{
			Date: "2024-01-03", Description: "code review", Project: "core", Hours: 2,
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if upd.EntryID != e1.EntryID || upd.Date != "2024-01-03" || upd.Description != "code review" || upd.Project != "core" || upd.Hours != 2 {
			t.Fatalf("Update did not replace fields: %+v", upd)
		}

		if _, err := s.Entries().Update(ctx, ts.ID, "no-such-entry", model.EntryPayload{
			Date: "2024-01-03", Description: "x", Project: "y", Hours: 1,
		}); !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("Update unknown entry: err=%v, want ErrNotFound", err)
		}

		// Delete returns the removed record.
		removed, err := s.Entries().Delete(ctx, ts.ID, e2.EntryID)
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if removed.EntryID != e2.EntryID || removed.Hours != 6 {
			t.Fatalf("Delete returned %+v", removed)
		}
		lst, err = s.Entries().List(ctx, ts.ID)
		if err != nil {
			t.Fatalf("List after delete: %v", err)
		}
		if len(lst) != 1 || lst[0].EntryID != e1.EntryID {
			t.Fatalf("List after delete: %+v", lst)
		}
	})

	t.Run("EntryDeleteNotFoundLeavesListUnchanged", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		ts, err := s.Timesheets().Create(ctx, model.TimesheetPayload{
			Week: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Hours: 0,
		})
		if err != nil {
			t.Fatalf("Create timesheet: %v", err)
		}
		if _, err := s.Entries().Create(ctx, ts.ID, model.EntryPayload{
			Date: "2024-01-01", Description: "work", Project: "core", Hours: 4,
		}); err != nil {
			t.Fatalf("Create entry: %v", err)
		}

		if _, err := s.Entries().Delete(ctx, ts.ID, "never-existed"); !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("Delete unknown entry: err=%v, want ErrNotFound", err)
		}
		lst, err := s.Entries().List(ctx, ts.ID)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(lst) != 1 {
			t.Fatalf("entry list changed by failed delete: n=%d", len(lst))
		}
	})
}

// seedWeeks inserts the three canonical January weeks used by the filter tests:
// W1 2024-01-01..01-05 (40h), W2 2024-01-08..01-12 (40h), W3 2024-01-15..01-19 (18h).
func seedWeeks(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	seeds := []model.TimesheetPayload{
		{Week: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Hours: 40},
		{Week: 2, StartDate: "2024-01-08", EndDate: "2024-01-12", Hours: 40},
		{Week: 3, StartDate: "2024-01-15", EndDate: "2024-01-19", Hours: 18},
	}
	for _, p := range seeds {
		if _, err := s.Timesheets().Create(ctx, p); err != nil {
			t.Fatalf("seed week %d: %v", p.Week, err)
		}
	}
}

func assertWeeks(t *testing.T, lst []*model.Timesheet, weeks ...int) {
	t.Helper()
	if len(lst) != len(weeks) {
		t.Fatalf("got %d timesheets, want %d (%v)", len(lst), len(weeks), weeks)
	}
	for i, w := range weeks {
		if lst[i].Week != w {
			t.Fatalf("position %d: week %d, want %d", i, lst[i].Week, w)
		}
	}
}
