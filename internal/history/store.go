// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a ledger of generation runs in SQLite.
// The ledger is bookkeeping only: it records what was generated when,
// and never short-circuits a remote model call.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/notescript/pkg/types"
)

const dbFile = "notescript.db"

// Store manages the generation history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at
// <history-dir>/notescript.db, creating the schema if needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.HistoryDir
	if dir == "" {
		dir = ".notescript"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			notes_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			backend TEXT NOT NULL,
			model TEXT NOT NULL,
			script_type TEXT NOT NULL,
			syntax_ok INTEGER NOT NULL,
			repaired INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_backend ON runs(backend)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one generation run into the ledger.
func (s *Store) Record(ctx context.Context, rec types.GenerationRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, notes_path, output_path, backend, model, script_type, syntax_ok, repaired)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.CreatedAt.UTC().Format(time.RFC3339),
		rec.NotesPath,
		rec.OutputPath,
		string(rec.Backend),
		rec.Model,
		string(rec.ScriptType),
		boolToInt(rec.SyntaxOK),
		boolToInt(rec.Repaired),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// ListOptions filters history queries.
type ListOptions struct {
	// Backend filters runs by AI backend. Empty matches all.
	Backend types.BackendKind

	// Limit caps the result count. Zero uses the store default.
	Limit int
}

// List returns recorded runs, newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.GenerationRecord, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	query := `SELECT id, created_at, notes_path, output_path, backend, model, script_type, syntax_ok, repaired
		FROM runs`
	var args []any
	if opts.Backend != "" {
		query += ` WHERE backend = ?`
		args = append(args, string(opts.Backend))
	}
	query += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []types.GenerationRecord
	for rows.Next() {
		var (
			rec                 types.GenerationRecord
			createdAt           string
			backend, scriptType string
			syntaxOK, repaired  int
		)
		if err := rows.Scan(&rec.ID, &createdAt, &rec.NotesPath, &rec.OutputPath,
			&backend, &rec.Model, &scriptType, &syntaxOK, &repaired); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", createdAt, err)
		}
		rec.CreatedAt = ts
		rec.Backend = types.BackendKind(backend)
		rec.ScriptType = types.ScriptType(scriptType)
		rec.SyntaxOK = syntaxOK != 0
		rec.Repaired = repaired != 0

		records = append(records, rec)
	}
	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
