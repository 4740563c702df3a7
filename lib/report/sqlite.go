package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/colbench/colbench/lib/harness"
)

// Store keeps benchmark reports in a SQLite database so results can be
// compared across runs.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the results database at dbPath. Parent
// directories are created and the schema is migrated automatically.
func NewStore(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReport persists a finished report. The run row and all result rows
// are written in one transaction.
func (s *Store) SaveReport(ctx context.Context, r *Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO runs (id, started_at, go_version, os, arch, num_cpu, dataset_size, seed, iterations) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		r.RunID, r.StartedAt.Unix(), r.GoVersion, r.OS, r.Arch, r.NumCPU, r.DatasetSize, r.Seed, r.Iterations,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, result := range r.Results {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO results (run_id, query, avg_ms, min_ms, max_ms) VALUES (?, ?, ?, ?, ?)",
			r.RunID, result.Name, result.AvgMs, result.MinMs, result.MaxMs,
		)
		if err != nil {
			return fmt.Errorf("failed to insert result for query %s: %w", result.Name, err)
		}
	}

	return tx.Commit()
}

// ListReports returns all stored reports, newest first. Raw samples are not
// persisted, so the returned results carry summary values only.
func (s *Store) ListReports(ctx context.Context) ([]Report, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, started_at, go_version, os, arch, num_cpu, dataset_size, seed, iterations FROM runs ORDER BY started_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var r Report
		var startedAt int64
		if err := rows.Scan(&r.RunID, &startedAt, &r.GoVersion, &r.OS, &r.Arch, &r.NumCPU, &r.DatasetSize, &r.Seed, &r.Iterations); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.StartedAt = time.Unix(startedAt, 0)
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	for i := range reports {
		results, err := s.listResults(ctx, reports[i].RunID)
		if err != nil {
			return nil, err
		}
		reports[i].Results = results
	}

	return reports, nil
}

func (s *Store) listResults(ctx context.Context, runID string) ([]harness.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT query, avg_ms, min_ms, max_ms FROM results WHERE run_id = ? ORDER BY rowid",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query results for run %s: %w", runID, err)
	}
	defer rows.Close()

	var results []harness.Result
	for rows.Next() {
		var result harness.Result
		if err := rows.Scan(&result.Name, &result.AvgMs, &result.MinMs, &result.MaxMs); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
