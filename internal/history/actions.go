// Package history lists past runs recorded in the history database.
package history

import (
	"fmt"
	"strconv"

	"github.com/textfreq/textfreq/pkg/db"
	"github.com/urfave/cli/v2"
)

func HistoryAction(c *cli.Context) error {
	var (
		database *db.DB
		err      error
	)
	if path := c.String("db"); path != "" {
		database, err = db.OpenAt(path)
	} else {
		database, err = db.Open()
	}
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	// With a run ID argument, show that run's per-file breakdown.
	if c.NArg() > 0 {
		runID, err := strconv.ParseInt(c.Args().First(), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID: %s", c.Args().First())
		}
		return printRun(database, runID)
	}

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Run 'textfreq count --paths \"...\"' first.")
		return nil
	}

	fmt.Printf("%-6s %-20s %8s %6s %6s %12s %12s %10s\n",
		"RUN", "STARTED", "FILES", "OK", "FAIL", "WORDS", "UNIQUE", "TIME")
	for _, r := range runs {
		fmt.Printf("%-6d %-20s %8d %6d %6d %12d %12d %9.2fs\n",
			r.RunID, r.StartedAt.Format("2006-01-02 15:04:05"),
			r.FileCount, r.Successful, r.Failed, r.TotalWords, r.UniqueWords, r.DurationSeconds)
	}
	return nil
}

func printRun(database *db.DB, runID int64) error {
	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}
	files, err := database.GetRunFiles(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d (%s): %d files, %d words, %d unique, %.2fs\n",
		run.RunID, run.StartedAt.Format("2006-01-02 15:04:05"),
		run.FileCount, run.TotalWords, run.UniqueWords, run.DurationSeconds)
	for _, f := range files {
		if f.Status == "failed" {
			fmt.Printf("  FAILED %s (%s)\n", f.Path, f.ErrorKind)
			continue
		}
		fmt.Printf("  %s: %d words, %d unique, %d lines, %.2fs\n",
			f.Path, f.TotalWords, f.UniqueWords, f.LinesProcessed, f.DurationSeconds)
	}
	return nil
}
