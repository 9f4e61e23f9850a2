// Package storage provides a SQLite journal of finished runs, so any run can
// be replayed deterministically later. It is not a leaderboard: nothing here
// ranks runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one finished session: how it ended, the input that drove it and
// the config it ran with. Report.Seed plus Config plus Recording are enough
// to replay it.
type Run struct {
	ID        int64
	Report    flappy.Report
	Recording flappy.Recording
	Config    []byte // YAML
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			config_yaml TEXT NOT NULL,
			flaps TEXT NOT NULL DEFAULT '',
			quit_tick INTEGER NOT NULL DEFAULT -1,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL,
			raw_score REAL NOT NULL,
			passed INTEGER NOT NULL,
			reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(run Run) (int64, error) {
	r := run.Report
	result, err := s.db.Exec(
		`INSERT INTO runs (seed, config_yaml, flaps, quit_tick, ticks, score, raw_score, passed, reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Seed, string(run.Config), flappy.EncodeTicks(run.Recording.Flaps), run.Recording.QuitTick,
		r.Ticks, r.Score, r.Raw, r.Passed, r.Reason.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, seed, config_yaml, flaps, quit_tick, ticks, score, raw_score, passed, reason, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run       Run
		config    string
		flaps     string
		reason    string
		createdAt any
	)
	err := row.Scan(
		&run.ID,
		&run.Report.Seed,
		&config,
		&flaps,
		&run.Recording.QuitTick,
		&run.Report.Ticks,
		&run.Report.Score,
		&run.Report.Raw,
		&run.Report.Passed,
		&reason,
		&createdAt,
	)
	if err != nil {
		return Run{}, err
	}

	run.Config = []byte(config)
	run.Report.Reason = flappy.ParseEndReason(reason)
	if run.Recording.Flaps, err = flappy.DecodeTicks(flaps); err != nil {
		return Run{}, fmt.Errorf("storage: run %d has corrupt flaps: %w", run.ID, err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		run.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			run.CreatedAt = parsed
		}
	}
	return run, nil
}

// GetRun retrieves a run by ID. Returns ErrRunNotFound if it does not exist.
func (s *Store) GetRun(id int64) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// PruneRuns deletes all but the newest keep runs and returns how many were removed.
func (s *Store) PruneRuns(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	result, err := s.db.Exec(
		`DELETE FROM runs WHERE id NOT IN (SELECT id FROM runs ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune runs: %w", err)
	}
	return result.RowsAffected()
}
