package scheduler

import (
	"fmt"

	"github.com/textfreq/textfreq/models"
	"github.com/textfreq/textfreq/pkg/counter"
)

// Progress is an informational message emitted by a worker mid-scan.
type Progress struct {
	Path           string
	LinesProcessed int
	UniqueWords    int
	TotalWords     int
}

// terminal is the single final message a worker produces for its file:
// either a completed FileCount or a typed FileError, never both.
type terminal struct {
	result *models.FileCount
	err    *models.FileError
}

// runWorker scans one file. The worker owns its file handle and frequency
// map exclusively; it communicates only by sending messages. The terminal
// channel is buffered so a worker that outlives its deadline can still
// finish and exit without a receiver.
func (s *Scheduler) runWorker(id int, path string, term chan<- terminal, progress chan<- Progress, quit <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("worker crashed", "worker_id", id, "path", path, "panic", r)
			term <- terminal{err: models.NewFileError(path, models.ErrWorkerCrashed, fmt.Errorf("panic: %v", r))}
		}
	}()

	s.log.Debug("worker started", "worker_id", id, "path", path)

	opts := counter.ScanOptions{ProgressEvery: s.opts.ProgressEvery}
	if opts.ProgressEvery > 0 {
		opts.OnProgress = func(lines, unique, total int) {
			select {
			case progress <- Progress{Path: path, LinesProcessed: lines, UniqueWords: unique, TotalWords: total}:
			case <-quit:
				// Run is over; drop informational messages.
			}
		}
	}

	fc, ferr := s.scanFile(path, opts)
	if ferr != nil {
		s.log.Warn("worker failed", "worker_id", id, "path", path, "kind", ferr.Kind, "error", ferr.Detail())
		term <- terminal{err: ferr}
		return
	}

	if s.detector != nil {
		fc.Language, fc.LanguageConfidence = s.detector.DetectFile(path)
	}

	s.log.Debug("worker finished", "worker_id", id, "path", path, "words", fc.TotalWords, "lines", fc.LinesProcessed)
	term <- terminal{result: fc}
}
