package counter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/textfreq/textfreq/models"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestScanFile(t *testing.T) {
	path := writeTestFile(t, "greeting.txt", "Hello, hello WORLD!\n")

	fc, ferr := ScanFile(path, ScanOptions{})
	if ferr != nil {
		t.Fatalf("ScanFile() error = %v", ferr)
	}

	if fc.TotalWords != 3 {
		t.Errorf("TotalWords = %d, want 3", fc.TotalWords)
	}
	if fc.UniqueWords != 2 {
		t.Errorf("UniqueWords = %d, want 2", fc.UniqueWords)
	}
	if fc.LinesProcessed != 1 {
		t.Errorf("LinesProcessed = %d, want 1", fc.LinesProcessed)
	}
	if fc.Frequencies["hello"] != 2 || fc.Frequencies["world"] != 1 {
		t.Errorf("Frequencies = %v, want map[hello:2 world:1]", fc.Frequencies)
	}
}

func TestScanFileTotalsMatchFrequencies(t *testing.T) {
	path := writeTestFile(t, "book.txt",
		"It was the best of times, it was the worst of times.\n"+
			"It was the age of wisdom, it was the age of foolishness.\n")

	fc, ferr := ScanFile(path, ScanOptions{})
	if ferr != nil {
		t.Fatalf("ScanFile() error = %v", ferr)
	}

	sum := 0
	for _, count := range fc.Frequencies {
		sum += count
	}
	if fc.TotalWords != sum {
		t.Errorf("TotalWords = %d, want sum of counts %d", fc.TotalWords, sum)
	}
	if fc.UniqueWords != len(fc.Frequencies) {
		t.Errorf("UniqueWords = %d, want len(Frequencies) %d", fc.UniqueWords, len(fc.Frequencies))
	}
	if fc.LinesProcessed != 2 {
		t.Errorf("LinesProcessed = %d, want 2", fc.LinesProcessed)
	}
}

func TestScanFileEmpty(t *testing.T) {
	path := writeTestFile(t, "empty.txt", "")

	fc, ferr := ScanFile(path, ScanOptions{})
	if ferr != nil {
		t.Fatalf("ScanFile() error = %v", ferr)
	}
	if fc.TotalWords != 0 || fc.UniqueWords != 0 || fc.LinesProcessed != 0 {
		t.Errorf("empty file produced non-zero counts: %+v", fc)
	}
}

func TestScanFileNotFound(t *testing.T) {
	_, ferr := ScanFile(filepath.Join(t.TempDir(), "missing.txt"), ScanOptions{})
	if ferr == nil {
		t.Fatal("ScanFile() succeeded for a missing file")
	}
	if ferr.Kind != models.ErrNotFound {
		t.Errorf("Kind = %s, want %s", ferr.Kind, models.ErrNotFound)
	}
}

func TestScanFileIsDirectory(t *testing.T) {
	_, ferr := ScanFile(t.TempDir(), ScanOptions{})
	if ferr == nil {
		t.Fatal("ScanFile() succeeded for a directory")
	}
	if ferr.Kind != models.ErrIsDirectory {
		t.Errorf("Kind = %s, want %s", ferr.Kind, models.ErrIsDirectory)
	}
}

func TestScanFileStatPermissionErrorIsIOError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "locked.txt")
	if err := os.WriteFile(path, []byte("hidden words\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	if err := os.Chmod(dir, 0000); err != nil {
		t.Fatalf("failed to chmod dir: %v", err)
	}
	defer os.Chmod(dir, 0755)

	_, ferr := ScanFile(path, ScanOptions{})
	if ferr == nil {
		t.Fatal("ScanFile() succeeded on an unreadable path")
	}
	// The file exists; failing to reach it is an I/O problem, not absence.
	if ferr.Kind != models.ErrIO {
		t.Errorf("Kind = %s, want %s", ferr.Kind, models.ErrIO)
	}
}

func TestScanFileMidScanFailure(t *testing.T) {
	// A line longer than the scanner buffer fails the scan partway through.
	// Everything counted before the failure must be discarded, and progress
	// must stop at the last good line.
	content := "alpha beta\n" + strings.Repeat("a", maxLineBytes+1)
	path := writeTestFile(t, "oversized.txt", content)

	progressCalls := 0
	fc, ferr := ScanFile(path, ScanOptions{
		ProgressEvery: 1,
		OnProgress: func(lines, unique, total int) {
			progressCalls++
		},
	})
	if ferr == nil {
		t.Fatal("ScanFile() succeeded on an oversized line")
	}
	if ferr.Kind != models.ErrIO {
		t.Errorf("Kind = %s, want %s", ferr.Kind, models.ErrIO)
	}
	if fc != nil {
		t.Errorf("FileCount = %+v, want nil after a mid-scan failure", fc)
	}
	if progressCalls != 1 {
		t.Errorf("got %d progress calls, want 1 (only the line before the failure)", progressCalls)
	}
}

func TestScanFileProgress(t *testing.T) {
	content := ""
	for i := 0; i < 10; i++ {
		content += "one two three\n"
	}
	path := writeTestFile(t, "progress.txt", content)

	type tick struct{ lines, unique, total int }
	var ticks []tick
	_, ferr := ScanFile(path, ScanOptions{
		ProgressEvery: 3,
		OnProgress: func(lines, unique, total int) {
			ticks = append(ticks, tick{lines, unique, total})
		},
	})
	if ferr != nil {
		t.Fatalf("ScanFile() error = %v", ferr)
	}

	// 10 lines at an interval of 3 fires at lines 3, 6, 9.
	if len(ticks) != 3 {
		t.Fatalf("got %d progress calls, want 3", len(ticks))
	}
	want := []tick{{3, 3, 9}, {6, 3, 18}, {9, 3, 27}}
	for i, w := range want {
		if ticks[i] != w {
			t.Errorf("tick %d = %+v, want %+v", i, ticks[i], w)
		}
	}
}
