package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-data-processor/internal/model"
)

var db *sql.DB

// RunRecord is one row of the run registry.
type RunRecord struct {
	ExecutionID   string     `json:"execution_id"`
	JobName       string     `json:"job_name"`
	ManualTrigger bool       `json:"manual_trigger"`
	Status        string     `json:"status"`
	RecordCount   int        `json:"record_count"`
	UsedFallback  bool       `json:"used_fallback"`
	CSVPath       string     `json:"csv_path,omitempty"`
	JSONPath      string     `json:"json_path,omitempty"`
	DurationMS    int64      `json:"duration_ms"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// RunError is one recorded failure of a run.
type RunError struct {
	ID          int64     `json:"id"`
	ExecutionID string    `json:"execution_id"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// Completion carries the figures recorded when a run finishes.
type Completion struct {
	RecordCount  int
	UsedFallback bool
	CSVPath      string
	JSONPath     string
	Duration     time.Duration
}

// InitDB opens the registry database and creates the schema.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		execution_id TEXT PRIMARY KEY,
		job_name TEXT,
		manual_trigger INTEGER,
		status TEXT,
		record_count INTEGER DEFAULT 0,
		used_fallback INTEGER DEFAULT 0,
		csv_path TEXT DEFAULT '',
		json_path TEXT DEFAULT '',
		duration_ms INTEGER DEFAULT 0,
		started_at DATETIME,
		completed_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		execution_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(runTable); err != nil {
		return err
	}
	if _, err := db.Exec(errorTable); err != nil {
		return err
	}
	return nil
}

// SaveRun registers a run as running. A rerun with the same execution id
// replaces the previous row, matching the overwrite semantics of the output
// files.
func SaveRun(run model.RunContext) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO runs
		(execution_id, job_name, manual_trigger, status, started_at)
		VALUES (?, ?, ?, ?, ?)`,
		run.ExecutionID, run.JobName, run.ManualTrigger, "running", run.StartedAt.UTC())
	return err
}

// CompleteRun marks a run as completed and records its artifacts.
func CompleteRun(executionID string, c Completion) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET
		status = 'completed',
		record_count = ?, used_fallback = ?, csv_path = ?, json_path = ?,
		duration_ms = ?, completed_at = ?
		WHERE execution_id = ?`,
		c.RecordCount, c.UsedFallback, c.CSVPath, c.JSONPath,
		c.Duration.Milliseconds(), now, executionID)
	return err
}

// FailRun marks a run as failed and records the error.
func FailRun(executionID string, runErr error) error {
	now := time.Now().UTC()
	if _, err := db.Exec(`UPDATE runs SET status = 'failed', completed_at = ? WHERE execution_id = ?`,
		now, executionID); err != nil {
		return err
	}
	return SaveRunError(executionID, runErr)
}

// SaveRunError appends an error entry for a run.
func SaveRunError(executionID string, runErr error) error {
	if runErr == nil {
		return nil
	}
	_, err := db.Exec(`INSERT INTO run_errors (execution_id, error_message, created_at) VALUES (?, ?, ?)`,
		executionID, runErr.Error(), time.Now().UTC())
	return err
}

// ListRuns returns all runs, newest first.
func ListRuns() ([]RunRecord, error) {
	rows, err := db.Query(`SELECT execution_id, job_name, manual_trigger, status,
		record_count, used_fallback, csv_path, json_path, duration_ms, started_at, completed_at
		FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun fetches a single run by execution id.
func GetRun(executionID string) (*RunRecord, error) {
	row := db.QueryRow(`SELECT execution_id, job_name, manual_trigger, status,
		record_count, used_fallback, csv_path, json_path, duration_ms, started_at, completed_at
		FROM runs WHERE execution_id = ?`, executionID)

	r, err := scanRun(row.Scan)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRunErrors returns the errors recorded for a run, oldest first.
func ListRunErrors(executionID string) ([]RunError, error) {
	rows, err := db.Query(`SELECT id, execution_id, error_message, created_at
		FROM run_errors WHERE execution_id = ? ORDER BY id`, executionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errs []RunError
	for rows.Next() {
		var e RunError
		if err := rows.Scan(&e.ID, &e.ExecutionID, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		errs = append(errs, e)
	}
	return errs, rows.Err()
}

func scanRun(scan func(dest ...any) error) (RunRecord, error) {
	var r RunRecord
	var completed sql.NullTime
	err := scan(&r.ExecutionID, &r.JobName, &r.ManualTrigger, &r.Status,
		&r.RecordCount, &r.UsedFallback, &r.CSVPath, &r.JSONPath,
		&r.DurationMS, &r.StartedAt, &completed)
	if err != nil {
		return RunRecord{}, err
	}
	if completed.Valid {
		t := completed.Time
		r.CompletedAt = &t
	}
	return r, nil
}
