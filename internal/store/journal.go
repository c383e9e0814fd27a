package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/model"
)

// Journal records one row per stored private thought. Rows carry only
// non-sensitive metadata, never plaintext or key material.
type Journal struct {
	db      *sql.DB
	dbPath  string
	entropy *rand.Rand
}

// NewJournal opens or creates the journal database at dbPath.
func NewJournal(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{
		db:      db,
		dbPath:  dbPath,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return j, nil
}

// NewRunID mints a ulid identifying one processing run.
func (j *Journal) NewRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), j.entropy).String()
}

func (j *Journal) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), j.entropy).String()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS thoughts (
		id          TEXT PRIMARY KEY,
		run_id      TEXT NOT NULL,
		seq         INTEGER NOT NULL,
		captured_at TEXT NOT NULL,
		filepath    TEXT NOT NULL,
		size_bytes  INTEGER NOT NULL,
		encrypted   INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_thoughts_run ON thoughts(run_id);
	CREATE INDEX IF NOT EXISTS idx_thoughts_captured ON thoughts(captured_at DESC);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Record persists one thought's metadata under the given run id.
func (j *Journal) Record(ctx context.Context, runID string, t model.Thought) error {
	encrypted := 0
	if t.Encrypted {
		encrypted = 1
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO thoughts (id, run_id, seq, captured_at, filepath, size_bytes, encrypted)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		j.newID(), runID, t.ID, t.Timestamp.UTC().Format(time.RFC3339), t.Filepath, t.SizeBytes, encrypted)
	if err != nil {
		return fmt.Errorf("insert thought: %w", err)
	}
	return nil
}

// Recent returns the most recently captured entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]model.JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.QueryContext(ctx,
		`SELECT id, run_id, seq, captured_at, filepath, size_bytes, encrypted
		 FROM thoughts ORDER BY captured_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.JournalEntry
	for rows.Next() {
		var e model.JournalEntry
		var capturedAt string
		var encrypted int
		if err := rows.Scan(&e.ID, &e.RunID, &e.Seq, &capturedAt, &e.Filepath, &e.SizeBytes, &encrypted); err != nil {
			return nil, err
		}
		e.CapturedAt, _ = time.Parse(time.RFC3339, capturedAt)
		e.Encrypted = encrypted != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats holds journal statistics.
type Stats struct {
	DBPath         string `json:"db_path"`
	DBSizeBytes    int64  `json:"db_size_bytes"`
	TotalThoughts  int    `json:"total_thoughts"`
	TotalBytes     int64  `json:"total_bytes"`
	DistinctRuns   int    `json:"distinct_runs"`
	LastCapturedAt string `json:"last_captured_at,omitempty"`
}

// Stats returns aggregate counts over the journal.
func (j *Journal) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{DBPath: j.dbPath}

	if info, err := os.Stat(j.dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	j.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM thoughts`).Scan(&st.TotalThoughts)
	j.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(size_bytes), 0) FROM thoughts`).Scan(&st.TotalBytes)
	j.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT run_id) FROM thoughts`).Scan(&st.DistinctRuns)

	var last sql.NullString
	j.db.QueryRowContext(ctx, `SELECT MAX(captured_at) FROM thoughts`).Scan(&last)
	if last.Valid {
		st.LastCapturedAt = last.String
	}

	return st, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}
