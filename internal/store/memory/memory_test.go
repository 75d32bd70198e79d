package memory

import (
	"context"
	"testing"

	"github.com/clockbook/clockbook/server/internal/model"
	"github.com/clockbook/clockbook/server/internal/store"
	"github.com/clockbook/clockbook/server/internal/store/storetest"
)

func TestMemoryStore_Compliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return New() })
}

// Results must be copies; mutating a returned record must not leak into the store.
func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.Timesheets().Create(ctx, model.TimesheetPayload{
		Week: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Hours: 40,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	created.Hours = 0
	created.Week = 99

	got, err := s.Timesheets().Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Hours != 40 || got.Week != 1 {
		t.Fatalf("store record mutated through returned copy: %+v", got)
	}
}
