// Package scheduler fans independent file-counting workers out over a
// bounded number of goroutines and merges their results into one
// AggregateResult. Files are processed in sequential batches: at most
// E workers run at any instant, and the next batch starts only after every
// worker in the current one has delivered its terminal message.
package scheduler

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/textfreq/textfreq/models"
	"github.com/textfreq/textfreq/pkg/counter"
	"github.com/textfreq/textfreq/pkg/detector"
	"github.com/textfreq/textfreq/pkg/mapreduce"
)

// Options configures a Scheduler.
type Options struct {
	// MaxWorkers caps concurrent workers. Zero or negative means "use the
	// number of available CPUs". The effective value is additionally capped
	// by the file count and floored at 1 so a misconfigured value can never
	// stall the run.
	MaxWorkers int

	// ProgressEvery forwards worker progress every N lines through
	// OnProgress. Zero disables progress reporting.
	ProgressEvery int
	OnProgress    func(Progress)

	// WorkerTimeout converts a worker that misses its deadline into a
	// WorkerTimeout failure for that file. The goroutine is not cancelled;
	// its late result is dropped. Zero disables the deadline.
	WorkerTimeout time.Duration

	// DetectLanguage samples each successfully scanned file and records its
	// detected language on the FileCount.
	DetectLanguage bool

	Logger *slog.Logger
}

type Scheduler struct {
	opts     Options
	log      *slog.Logger
	detector *detector.Detector

	// scanFile is swapped out in tests.
	scanFile func(path string, opts counter.ScanOptions) (*models.FileCount, *models.FileError)
}

func New(opts Options) *Scheduler {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	s := &Scheduler{opts: opts, log: log, scanFile: counter.ScanFile}
	if opts.DetectLanguage {
		// One detector shared read-only by all workers.
		s.detector = detector.New()
	}
	return s
}

// EffectiveWorkers computes max(1, min(maxWorkers, fileCount, NumCPU)),
// with maxWorkers <= 0 meaning "default to NumCPU".
func EffectiveWorkers(maxWorkers, fileCount int) int {
	avail := runtime.NumCPU()
	e := maxWorkers
	if e <= 0 || e > avail {
		e = avail
	}
	if e > fileCount {
		e = fileCount
	}
	if e < 1 {
		e = 1
	}
	return e
}

// Run counts every file in paths and merges the per-file results. The
// input order is significant: batches are formed in order and results are
// recorded in submission order within each batch. Per-file failures are
// isolated; the only way Run yields an empty aggregate is an empty input,
// which is not an error and launches no workers.
func (s *Scheduler) Run(paths []string) *models.AggregateResult {
	agg := models.NewAggregateResult()
	if len(paths) == 0 {
		return agg
	}

	workers := EffectiveWorkers(s.opts.MaxWorkers, len(paths))
	s.log.Info("starting run", "files", len(paths), "workers", workers)

	// quit tells workers and the progress consumer that the run is over,
	// so a worker outliving its deadline never blocks or panics on send.
	quit := make(chan struct{})

	progress := make(chan Progress, 4*workers)
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		for {
			select {
			case p := <-progress:
				if s.opts.OnProgress != nil {
					s.opts.OnProgress(p)
				}
			case <-quit:
				return
			}
		}
	}()

	for start := 0; start < len(paths); start += workers {
		end := start + workers
		if end > len(paths) {
			end = len(paths)
		}
		s.runBatch(paths[start:end], progress, quit, agg)
	}

	// Stop the progress consumer before returning so the callback is never
	// invoked after Run.
	close(quit)
	<-consumerDone

	// Unique words are recomputed from the combined map, never summed per
	// file: the same word may appear in many files.
	agg.TotalUniqueWords = len(agg.Combined)

	s.log.Info("run complete",
		"successful", len(agg.Successful),
		"failed", len(agg.Failed),
		"total_words", agg.TotalWords,
		"unique_words", agg.TotalUniqueWords,
		"lines", agg.TotalLinesProcessed)
	return agg
}

// runBatch launches one worker per file and waits for every terminal
// message before returning. Each worker gets its own buffered terminal
// channel; results are collected in submission order.
func (s *Scheduler) runBatch(batch []string, progress chan<- Progress, quit <-chan struct{}, agg *models.AggregateResult) {
	terminals := make([]chan terminal, len(batch))
	for i, path := range batch {
		terminals[i] = make(chan terminal, 1)
		go s.runWorker(i, path, terminals[i], progress, quit)
	}

	var deadline time.Time
	if s.opts.WorkerTimeout > 0 {
		deadline = time.Now().Add(s.opts.WorkerTimeout)
	}

	for i, path := range batch {
		s.record(agg, s.await(path, terminals[i], deadline))
	}
}

// await blocks for a worker's terminal message, or until the batch
// deadline when one is set.
func (s *Scheduler) await(path string, term <-chan terminal, deadline time.Time) terminal {
	if deadline.IsZero() {
		return <-term
	}

	// A result delivered before the deadline always wins, even when await
	// only gets around to this worker after the deadline has passed.
	select {
	case t := <-term:
		return t
	default:
	}

	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()
	select {
	case t := <-term:
		return t
	case <-timer.C:
		s.log.Warn("worker timed out", "path", path, "timeout", s.opts.WorkerTimeout)
		return terminal{err: models.NewFileError(path, models.ErrWorkerTimeout,
			fmt.Errorf("no result within %s", s.opts.WorkerTimeout))}
	}
}

// record folds one terminal message into the aggregate. The aggregate has
// a single writer: this method is only ever called from Run's goroutine.
func (s *Scheduler) record(agg *models.AggregateResult, t terminal) {
	if t.err != nil {
		agg.Failed = append(agg.Failed, t.err)
		return
	}
	agg.Successful = append(agg.Successful, t.result)
	mapreduce.Merge(agg.Combined, t.result.Frequencies)
	agg.TotalWords += t.result.TotalWords
	agg.TotalLinesProcessed += t.result.LinesProcessed
}
