package postgres

import (
	"os"
	"testing"

	"github.com/clockbook/clockbook/server/internal/store"
	"github.com/clockbook/clockbook/server/internal/store/storetest"
)

func makePGStore(t *testing.T) store.Store {
	t.Helper()
	dsn := os.Getenv("CLOCKBOOK_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("CLOCKBOOK_POSTGRES_DSN not set; skipping postgres store integration test")
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("postgres open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	s, err := NewWithDB(db)
	if err != nil {
		t.Fatalf("postgres store: %v", err)
	}
	// The suite assumes an empty store.
	if _, err := db.Exec(`TRUNCATE timesheets, entries`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return s
}

func TestPostgresStore_Compliance(t *testing.T) {
	storetest.Run(t, makePGStore)
}
