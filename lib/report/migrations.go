package report

import "database/sql"

// schema sets up the results database. Statements run on every open; all of
// them are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    started_at INTEGER NOT NULL,
    go_version TEXT NOT NULL,
    os TEXT NOT NULL,
    arch TEXT NOT NULL,
    num_cpu INTEGER NOT NULL,
    dataset_size INTEGER NOT NULL,
    seed INTEGER NOT NULL,
    iterations INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
    run_id TEXT NOT NULL,
    query TEXT NOT NULL,
    avg_ms REAL NOT NULL,
    min_ms REAL NOT NULL,
    max_ms REAL NOT NULL,
    PRIMARY KEY (run_id, query),
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_results_run_id ON results(run_id);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
