package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/clockbook/clockbook/server/internal/model"
	"github.com/clockbook/clockbook/server/internal/store"
)

// Dates are stored as TEXT in YYYY-MM-DD form; lexicographic comparison in
// SQL implements the inclusive interval overlap test. Entry insertion order
// is preserved through the autoincrement Seq column.
const schema = `
CREATE TABLE IF NOT EXISTS Timesheets (
    TimesheetId TEXT PRIMARY KEY,
    Week        INTEGER NOT NULL,
    StartDate   TEXT NOT NULL,
    EndDate     TEXT NOT NULL,
    Hours       REAL NOT NULL,
    Status      TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS Entries (
    Seq         INTEGER PRIMARY KEY AUTOINCREMENT,
    EntryId     TEXT NOT NULL UNIQUE,
    TimesheetId TEXT NOT NULL,
    EntryDate   TEXT NOT NULL,
    Description TEXT NOT NULL,
    Project     TEXT NOT NULL,
    Hours       REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_timesheet ON Entries(TimesheetId);
`

// New opens (or creates) the database file at path and ensures the schema.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB allows wiring with an existing connection (used by factory and tests).
func NewWithDB(db *sql.DB) (store.Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Timesheets() store.Timesheets { return &timesheets{db: s.db} }
func (s *sqliteStore) Entries() store.Entries       { return &entries{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Timesheets ---

type timesheets struct{ db *sql.DB }

func (t *timesheets) List(ctx context.Context, req model.ListTimesheetsRequest) ([]*model.Timesheet, error) {
	q := `SELECT TimesheetId, Week, StartDate, EndDate, Hours, Status FROM Timesheets WHERE 1=1`
	args := []interface{}{}
	if req.StartDate != "" {
		q += ` AND EndDate >= ?`
		args = append(args, req.StartDate)
	}
	if req.EndDate != "" {
		q += ` AND StartDate <= ?`
		args = append(args, req.EndDate)
	}
	if req.Status != "" {
		q += ` AND Status = ?`
		args = append(args, string(req.Status))
	}
	q += ` ORDER BY Week ASC`

	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	res := make([]*model.Timesheet, 0)
	for rows.Next() {
		var ts model.Timesheet
		if err := rows.Scan(&ts.ID, &ts.Week, &ts.StartDate, &ts.EndDate, &ts.Hours, &ts.Status); err != nil {
			return nil, err
		}
		res = append(res, &ts)
	}
	return res, rows.Err()
}

func (t *timesheets) Get(ctx context.Context, id string) (*model.Timesheet, error) {
	var ts model.Timesheet
	row := t.db.QueryRowContext(ctx, `SELECT TimesheetId, Week, StartDate, EndDate, Hours, Status FROM Timesheets WHERE TimesheetId = ?`, id)
	if err := row.Scan(&ts.ID, &ts.Week, &ts.StartDate, &ts.EndDate, &ts.Hours, &ts.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &ts, nil
}

func (t *timesheets) Create(ctx context.Context, p model.TimesheetPayload) (*model.Timesheet, error) {
	ts := &model.Timesheet{
		ID:        uuid.New().String(),
		Week:      p.Week,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Hours:     p.Hours,
		Status:    model.ComputeStatus(p.Hours),
	}
	_, err := t.db.ExecContext(ctx, `INSERT INTO Timesheets (TimesheetId, Week, StartDate, EndDate, Hours, Status) VALUES (?,?,?,?,?,?)`,
		ts.ID, ts.Week, ts.StartDate, ts.EndDate, ts.Hours, string(ts.Status))
	if err != nil {
		return nil, err
	}
	return ts, nil
}

func (t *timesheets) Update(ctx context.Context, id string, p model.TimesheetPayload) (*model.Timesheet, error) {
	status := model.ComputeStatus(p.Hours)
	res, err := t.db.ExecContext(ctx, `UPDATE Timesheets SET Week = ?, StartDate = ?, EndDate = ?, Hours = ?, Status = ? WHERE TimesheetId = ?`,
		p.Week, p.StartDate, p.EndDate, p.Hours, string(status), id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, model.ErrNotFound
	}
	return &model.Timesheet{
		ID:        id,
		Week:      p.Week,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Hours:     p.Hours,
		Status:    status,
	}, nil
}

// --- Entries ---

type entries struct{ db *sql.DB }

func (e *entries) List(ctx context.Context, timesheetID string) ([]*model.Entry, error) {
	rows, err := e.db.QueryContext(ctx, `SELECT EntryId, TimesheetId, EntryDate, Description, Project, Hours FROM Entries WHERE TimesheetId = ? ORDER BY Seq ASC`, timesheetID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	res := make([]*model.Entry, 0)
	for rows.Next() {
		var en model.Entry
		if err := rows.Scan(&en.EntryID, &en.TimesheetID, &en.Date, &en.Description, &en.Project, &en.Hours); err != nil {
			return nil, err
		}
		res = append(res, &en)
	}
	return res, rows.Err()
}

func (e *entries) Create(ctx context.Context, timesheetID string, p model.EntryPayload) (*model.Entry, error) {
	en := &model.Entry{
		EntryID:     uuid.New().String(),
		TimesheetID: timesheetID,
		Date:        p.Date,
		Description: p.Description,
		Project:     p.Project,
		Hours:       p.Hours,
	}
	_, err := e.db.ExecContext(ctx, `INSERT INTO Entries (EntryId, TimesheetId, EntryDate, Description, Project, Hours) VALUES (?,?,?,?,?,?)`,
		en.EntryID, en.TimesheetID, en.Date, en.Description, en.Project, en.Hours)
	if err != nil {
		return nil, err
	}
	return en, nil
}

func (e *entries) Update(ctx context.Context, timesheetID, entryID string, p model.EntryPayload) (*model.Entry, error) {
	res, err := e.db.ExecContext(ctx, `UPDATE Entries SET EntryDate = ?, Description = ?, Project = ?, Hours = ? WHERE TimesheetId = ? AND EntryId = ?`,
		p.Date, p.Description, p.Project, p.Hours, timesheetID, entryID)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, model.ErrNotFound
	}
	return &model.Entry{
		EntryID:     entryID,
		TimesheetID: timesheetID,
		Date:        p.Date,
		Description: p.Description,
		Project:     p.Project,
		Hours:       p.Hours,
	}, nil
}

func (e *entries) Delete(ctx context.Context, timesheetID, entryID string) (*model.Entry, error) {
	var en model.Entry
	row := e.db.QueryRowContext(ctx, `SELECT EntryId, TimesheetId, EntryDate, Description, Project, Hours FROM Entries WHERE TimesheetId = ? AND EntryId = ?`, timesheetID, entryID)
	if err := row.Scan(&en.EntryID, &en.TimesheetID, &en.Date, &en.Description, &en.Project, &en.Hours); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	if _, err := e.db.ExecContext(ctx, `DELETE FROM Entries WHERE TimesheetId = ? AND EntryId = ?`, timesheetID, entryID); err != nil {
		return nil, err
	}
	return &en, nil
}
