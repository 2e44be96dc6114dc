package db

import (
	"errors"
	"testing"
	"time"

	"github.com/textfreq/textfreq/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func sampleAggregate() *models.AggregateResult {
	agg := models.NewAggregateResult()
	agg.Successful = []*models.FileCount{
		{
			Path:           "books/moby.txt",
			TotalWords:     100,
			UniqueWords:    40,
			LinesProcessed: 12,
			Duration:       300 * time.Millisecond,
		},
		{
			Path:           "books/emma.txt",
			TotalWords:     50,
			UniqueWords:    30,
			LinesProcessed: 8,
			Duration:       100 * time.Millisecond,
		},
	}
	agg.Failed = []*models.FileError{
		models.NewFileError("books/missing.txt", models.ErrNotFound, errors.New("no such file")),
	}
	agg.TotalWords = 150
	agg.TotalUniqueWords = 60
	agg.TotalLinesProcessed = 20
	return agg
}

func TestRecordRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.RecordRun(sampleAggregate(), 2*time.Second)
	if err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("RecordRun() returned 0 run ID")
	}

	run, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}
	if run.FileCount != 3 {
		t.Errorf("run.FileCount = %d, want 3", run.FileCount)
	}
	if run.Successful != 2 {
		t.Errorf("run.Successful = %d, want 2", run.Successful)
	}
	if run.Failed != 1 {
		t.Errorf("run.Failed = %d, want 1", run.Failed)
	}
	if run.TotalWords != 150 {
		t.Errorf("run.TotalWords = %d, want 150", run.TotalWords)
	}
	if run.UniqueWords != 60 {
		t.Errorf("run.UniqueWords = %d, want 60", run.UniqueWords)
	}
}

func TestRecordRunFiles(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.RecordRun(sampleAggregate(), time.Second)
	if err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}

	files, err := db.GetRunFiles(runID)
	if err != nil {
		t.Fatalf("GetRunFiles() error = %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("len(files) = %d, want 3", len(files))
	}

	if files[0].Path != "books/moby.txt" || files[0].Status != "success" {
		t.Errorf("files[0] = %+v, want success for books/moby.txt", files[0])
	}
	if files[0].TotalWords != 100 {
		t.Errorf("files[0].TotalWords = %d, want 100", files[0].TotalWords)
	}

	last := files[2]
	if last.Status != "failed" {
		t.Errorf("last.Status = %q, want failed", last.Status)
	}
	if last.ErrorKind != string(models.ErrNotFound) {
		t.Errorf("last.ErrorKind = %q, want %q", last.ErrorKind, models.ErrNotFound)
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 3; i++ {
		if _, err := db.RecordRun(sampleAggregate(), time.Second); err != nil {
			t.Fatalf("RecordRun() error = %v", err)
		}
	}

	runs, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].RunID < runs[1].RunID {
		t.Errorf("runs not sorted newest first: %d before %d", runs[0].RunID, runs[1].RunID)
	}
}

func TestGetRunByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(999); err == nil {
		t.Error("GetRunByID(999) succeeded for a missing run")
	}
}
