// Package counter scans a single file line by line and accumulates its
// word-frequency map. Memory stays bounded by the longest line regardless
// of file size.
package counter

import (
	"bufio"
	"os"
	"time"

	"github.com/textfreq/textfreq/models"
	"github.com/textfreq/textfreq/pkg/tokenizer"
)

// ProgressFunc receives scan progress every ScanOptions.ProgressEvery lines.
type ProgressFunc func(linesProcessed, uniqueWords, totalWords int)

// ScanOptions configures a single file scan.
type ScanOptions struct {
	// ProgressEvery invokes OnProgress every N lines. Zero disables
	// progress reporting.
	ProgressEvery int
	OnProgress    ProgressFunc
}

// maxLineBytes bounds a single line; lines are the unit of residency.
const maxLineBytes = 4 * 1024 * 1024

// ScanFile counts word frequencies in the file at path. It fails with
// models.ErrNotFound or models.ErrIsDirectory before opening anything, and
// with models.ErrIO on a mid-scan read failure, in which case all partial
// counts are discarded. OnProgress is never invoked after an error.
func ScanFile(path string, opts ScanOptions) (*models.FileCount, *models.FileError) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.NewFileError(path, models.ErrNotFound, err)
		}
		// Stat can fail for reasons other than absence, e.g. permissions.
		return nil, models.NewFileError(path, models.ErrIO, err)
	}
	if info.IsDir() {
		return nil, models.NewFileError(path, models.ErrIsDirectory, nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, models.NewFileError(path, models.ErrIO, err)
	}
	defer f.Close()

	start := time.Now()
	fc := &models.FileCount{
		Path:        path,
		Frequencies: make(map[string]int),
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		fc.LinesProcessed++
		for _, token := range tokenizer.Tokenize(scanner.Text()) {
			fc.Frequencies[token]++
			fc.TotalWords++
		}
		if opts.ProgressEvery > 0 && opts.OnProgress != nil && fc.LinesProcessed%opts.ProgressEvery == 0 {
			opts.OnProgress(fc.LinesProcessed, len(fc.Frequencies), fc.TotalWords)
		}
	}
	if err := scanner.Err(); err != nil {
		// Partial counts are never merged into an aggregate.
		return nil, models.NewFileError(path, models.ErrIO, err)
	}

	fc.UniqueWords = len(fc.Frequencies)
	fc.Duration = time.Since(start)
	return fc, nil
}
