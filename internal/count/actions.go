package count

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/textfreq/textfreq/internal/common"
	"github.com/textfreq/textfreq/models"
	"github.com/textfreq/textfreq/pkg/db"
	"github.com/textfreq/textfreq/pkg/scheduler"
	"github.com/urfave/cli/v2"
)

// CountAction expands the requested paths, runs the scheduler over them,
// and emits the aggregate report.
func CountAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	patterns := common.SplitPaths(c.String("paths"))
	patterns = append(patterns, c.Args().Slice()...)
	if len(patterns) == 0 {
		return fmt.Errorf("no paths provided: use --paths or positional arguments")
	}

	files, err := common.ExpandPaths(patterns)
	if err != nil {
		return err
	}

	config := &models.CountConfig{
		Paths:          files,
		MaxWorkers:     c.Int("workers"),
		ProgressEvery:  c.Int("progress-every"),
		TopN:           c.Int("top"),
		DetectLanguage: c.Bool("detect-lang"),
		WorkerTimeout:  c.Duration("worker-timeout"),
	}

	opts := scheduler.Options{
		MaxWorkers:     config.MaxWorkers,
		ProgressEvery:  config.ProgressEvery,
		WorkerTimeout:  config.WorkerTimeout,
		DetectLanguage: config.DetectLanguage,
		Logger:         logger,
	}
	if config.ProgressEvery > 0 {
		opts.OnProgress = func(p scheduler.Progress) {
			logger.Info("progress", "path", p.Path,
				"lines", p.LinesProcessed, "unique_words", p.UniqueWords, "total_words", p.TotalWords)
		}
	}

	agg := scheduler.New(opts).Run(config.Paths)
	elapsed := time.Since(startTime)

	if !c.Bool("no-history") {
		recordHistory(logger, c.String("db"), agg, elapsed)
	}

	out := BuildFinalOutput(agg, config.TopN, elapsed.Seconds(), c.Bool("ignore-common"))

	if dir := c.String("summary-dir"); dir != "" {
		path, err := WriteSummaryFile(out, dir)
		if err != nil {
			logger.Warn("failed to write summary file", "error", err)
		} else {
			logger.Info("summary written", "path", path)
		}
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	PrintHuman(agg, out.Top, elapsed.Seconds())
	return nil
}

// recordHistory stores the run in the history database. History is best
// effort: a storage failure is logged, never surfaced as a run failure.
func recordHistory(logger *slog.Logger, dbPath string, agg *models.AggregateResult, elapsed time.Duration) {
	var (
		database *db.DB
		err      error
	)
	if dbPath != "" {
		database, err = db.OpenAt(dbPath)
	} else {
		database, err = db.Open()
	}
	if err != nil {
		logger.Warn("failed to open history database", "error", err)
		return
	}
	defer database.Close()

	runID, err := database.RecordRun(agg, elapsed)
	if err != nil {
		logger.Warn("failed to record run", "error", err)
		return
	}
	logger.Info("run recorded", "run_id", runID)
}
