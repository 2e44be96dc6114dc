package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/textfreq/textfreq/models"
)

// Run is one row of run history.
type Run struct {
	RunID           int64
	StartedAt       time.Time
	DurationSeconds float64
	FileCount       int
	Successful      int
	Failed          int
	TotalWords      int
	UniqueWords     int
	TotalLines      int
}

// RunFile is the per-file outcome recorded for a run.
type RunFile struct {
	Path            string
	Status          string
	ErrorKind       string
	TotalWords      int
	UniqueWords     int
	LinesProcessed  int
	DurationSeconds float64
}

// RecordRun stores the outcome of a finished run and its per-file results.
// Frequency maps are deliberately not stored.
func (db *DB) RecordRun(agg *models.AggregateResult, duration time.Duration) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO runs (duration_seconds, file_count, successful, failed, total_words, unique_words, total_lines)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		duration.Seconds(),
		len(agg.Successful)+len(agg.Failed),
		len(agg.Successful),
		len(agg.Failed),
		agg.TotalWords,
		agg.TotalUniqueWords,
		agg.TotalLinesProcessed,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	for _, fc := range agg.Successful {
		_, err := tx.Exec(`
			INSERT INTO run_files (run_id, path, status, total_words, unique_words, lines_processed, duration_seconds)
			VALUES (?, ?, 'success', ?, ?, ?, ?)`,
			runID, fc.Path, fc.TotalWords, fc.UniqueWords, fc.LinesProcessed, fc.Duration.Seconds())
		if err != nil {
			return 0, fmt.Errorf("failed to insert run file: %w", err)
		}
	}
	for _, fe := range agg.Failed {
		_, err := tx.Exec(`
			INSERT INTO run_files (run_id, path, status, error_kind)
			VALUES (?, ?, 'failed', ?)`,
			runID, fe.Path, string(fe.Kind))
		if err != nil {
			return 0, fmt.Errorf("failed to insert failed run file: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, started_at, duration_seconds, file_count, successful, failed, total_words, unique_words, total_lines
		FROM runs ORDER BY started_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.StartedAt, &r.DurationSeconds, &r.FileCount,
			&r.Successful, &r.Failed, &r.TotalWords, &r.UniqueWords, &r.TotalLines); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunFiles returns the per-file outcomes of one run in insertion order.
func (db *DB) GetRunFiles(runID int64) ([]RunFile, error) {
	rows, err := db.Query(`
		SELECT path, status, COALESCE(error_kind, ''), total_words, unique_words, lines_processed, duration_seconds
		FROM run_files WHERE run_id = ? ORDER BY run_file_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run files: %w", err)
	}
	defer rows.Close()

	var files []RunFile
	for rows.Next() {
		var f RunFile
		if err := rows.Scan(&f.Path, &f.Status, &f.ErrorKind, &f.TotalWords,
			&f.UniqueWords, &f.LinesProcessed, &f.DurationSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan run file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// GetRunByID returns a single run.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, started_at, duration_seconds, file_count, successful, failed, total_words, unique_words, total_lines
		FROM runs WHERE run_id = ?`, runID).
		Scan(&r.RunID, &r.StartedAt, &r.DurationSeconds, &r.FileCount,
			&r.Successful, &r.Failed, &r.TotalWords, &r.UniqueWords, &r.TotalLines)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}
