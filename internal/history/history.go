// Package history persists an invocation log of analysis runs to a local
// SQLite database, so past consultations can be reviewed and compared.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// Entry is one recorded analysis run.
type Entry struct {
	ID         string          `json:"id"`
	Tool       string          `json:"tool"`
	Params     json.RawMessage `json:"params"`
	Success    bool            `json:"success"`
	ErrorCode  string          `json:"errorCode,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
	DurationMS int64           `json:"durationMs"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Filter narrows List results.
type Filter struct {
	Tool       string
	OnlyFailed bool
	Limit      int
	Offset     int
}

// Store is the SQLite-backed invocation log.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at the given path and
// configures WAL mode.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "history: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "history: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS analyses (
	id          TEXT PRIMARY KEY,
	tool        TEXT NOT NULL,
	params      TEXT NOT NULL,
	success     INTEGER NOT NULL,
	error_code  TEXT,
	result      TEXT,
	duration_ms INTEGER NOT NULL DEFAULT 0,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_analyses_tool ON analyses(tool);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

// Migrate applies the schema.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "history: migrate")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run and returns it with ID and timestamp filled in.
func (s *Store) Record(ctx context.Context, e Entry) (*Entry, error) {
	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()
	if e.Params == nil {
		e.Params = json.RawMessage("{}")
	}

	var errorCode sql.NullString
	if e.ErrorCode != "" {
		errorCode = sql.NullString{String: e.ErrorCode, Valid: true}
	}
	var result sql.NullString
	if len(e.Result) > 0 {
		result = sql.NullString{String: string(e.Result), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, tool, params, success, error_code, result, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Tool, string(e.Params), e.Success, errorCode, result, e.DurationMS, e.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "history: insert analysis")
	}
	return &e, nil
}

// Get returns one run by ID, or (nil, nil) when it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, tool, params, success, error_code, result, duration_ms, created_at
		 FROM analyses WHERE id = ?`, id)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

// List returns runs matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter Filter) ([]Entry, error) {
	query := `SELECT id, tool, params, success, error_code, result, duration_ms, created_at
	          FROM analyses WHERE 1=1`
	var args []any

	if filter.Tool != "" {
		query += ` AND tool = ?`
		args = append(args, filter.Tool)
	}
	if filter.OnlyFailed {
		query += ` AND success = 0`
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "history: list analyses")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, eris.Wrap(rows.Err(), "history: list iterate")
}

// Prune deletes runs older than the retention window, returning the count
// removed.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	res, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE created_at <= ?`, cutoff)
	if err != nil {
		return 0, eris.Wrap(err, "history: prune")
	}
	n, err := res.RowsAffected()
	return int(n), eris.Wrap(err, "history: rows affected")
}

type scannable interface {
	Scan(dest ...any) error
}

func scanEntry(row scannable) (*Entry, error) {
	var e Entry
	var params string
	var errorCode, result sql.NullString

	err := row.Scan(&e.ID, &e.Tool, &params, &e.Success, &errorCode, &result, &e.DurationMS, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, eris.Wrap(err, "history: scan analysis")
	}

	e.Params = json.RawMessage(params)
	if errorCode.Valid {
		e.ErrorCode = errorCode.String
	}
	if result.Valid {
		e.Result = json.RawMessage(result.String)
	}
	return &e, nil
}
