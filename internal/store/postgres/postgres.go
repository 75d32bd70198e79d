package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/clockbook/clockbook/server/internal/model"
	"github.com/clockbook/clockbook/server/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS timesheets (
    timesheet_id TEXT PRIMARY KEY,
    week         INTEGER NOT NULL,
    start_date   TEXT NOT NULL,
    end_date     TEXT NOT NULL,
    hours        DOUBLE PRECISION NOT NULL,
    status       TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS entries (
    seq          BIGSERIAL PRIMARY KEY,
    entry_id     TEXT NOT NULL UNIQUE,
    timesheet_id TEXT NOT NULL,
    entry_date   TEXT NOT NULL,
    description  TEXT NOT NULL,
    project      TEXT NOT NULL,
    hours        DOUBLE PRECISION NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_timesheet ON entries(timesheet_id);
`

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// New opens a connection and ensures the schema exists.
func New(dsn string) (store.Store, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) (store.Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &pgStore{db: db}, nil
}

type pgStore struct{ db *sql.DB }

func (s *pgStore) Timesheets() store.Timesheets { return &timesheets{db: s.db} }
func (s *pgStore) Entries() store.Entries       { return &entries{db: s.db} }

// HealthPing implements health.HealthPinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Timesheets ---

type timesheets struct{ db *sql.DB }

func (t *timesheets) List(ctx context.Context, req model.ListTimesheetsRequest) ([]*model.Timesheet, error) {
	q := `SELECT timesheet_id, week, start_date, end_date, hours, status FROM timesheets WHERE true`
	args := []interface{}{}
	if req.StartDate != "" {
		args = append(args, req.StartDate)
		q += fmt.Sprintf(` AND end_date >= $%d`, len(args))
	}
	if req.EndDate != "" {
		args = append(args, req.EndDate)
		q += fmt.Sprintf(` AND start_date <= $%d`, len(args))
	}
	if req.Status != "" {
		args = append(args, string(req.Status))
		q += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	q += ` ORDER BY week ASC`

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
	row := t.db.QueryRowContext(ctx, `SELECT timesheet_id, week, start_date, end_date, hours, status FROM timesheets WHERE timesheet_id = $1`, id)
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
	_, err := t.db.ExecContext(ctx, `INSERT INTO timesheets (timesheet_id, week, start_date, end_date, hours, status) VALUES ($1,$2,$3,$4,$5,$6)`,
		ts.ID, ts.Week, ts.StartDate, ts.EndDate, ts.Hours, string(ts.Status))
	if err != nil {
		return nil, err
	}
	return ts, nil
}

func (t *timesheets) Update(ctx context.Context, id string, p model.TimesheetPayload) (*model.Timesheet, error) {
	status := model.ComputeStatus(p.Hours)
	res, err := t.db.ExecContext(ctx, `UPDATE timesheets SET week = $1, start_date = $2, end_date = $3, hours = $4, status = $5 WHERE timesheet_id = $6`,
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
	rows, err := e.db.QueryContext(ctx, `SELECT entry_id, timesheet_id, entry_date, description, project, hours FROM entries WHERE timesheet_id = $1 ORDER BY seq ASC`, timesheetID)
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
	_, err := e.db.ExecContext(ctx, `INSERT INTO entries (entry_id, timesheet_id, entry_date, description, project, hours) VALUES ($1,$2,$3,$4,$5,$6)`,
		en.EntryID, en.TimesheetID, en.Date, en.Description, en.Project, en.Hours)
	if err != nil {
		return nil, err
	}
	return en, nil
}

func (e *entries) Update(ctx context.Context, timesheetID, entryID string, p model.EntryPayload) (*model.Entry, error) {
	res, err := e.db.ExecContext(ctx, `UPDATE entries SET entry_date = $1, description = $2, project = $3, hours = $4 WHERE timesheet_id = $5 AND entry_id = $6`,
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
	row := e.db.QueryRowContext(ctx, `DELETE FROM entries WHERE timesheet_id = $1 AND entry_id = $2 RETURNING entry_id, timesheet_id, entry_date, description, project, hours`, timesheetID, entryID)
	if err := row.Scan(&en.EntryID, &en.TimesheetID, &en.Date, &en.Description, &en.Project, &en.Hours); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &en, nil
}
