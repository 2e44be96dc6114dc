package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/textfreq/textfreq/internal/count"
	"github.com/textfreq/textfreq/internal/download"
	"github.com/textfreq/textfreq/internal/history"
	"github.com/textfreq/textfreq/internal/serve"
	"github.com/textfreq/textfreq/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "textfreq",
		Usage: "word-frequency statistics over large text files, in parallel",
		Commands: []*cli.Command{
			{
				Name:      "count",
				Usage:     "Count word frequencies across one or more files",
				ArgsUsage: "[paths...]",
				Action:    count.CountAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "paths",
						Usage: "Comma-separated file paths or glob patterns (** supported)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Max concurrent workers (0 = number of CPUs)",
					},
					&cli.IntFlag{
						Name:  "top",
						Value: 10,
						Usage: "How many top words to report",
					},
					&cli.IntFlag{
						Name:  "progress-every",
						Usage: "Log scan progress every N lines (0 = off)",
					},
					&cli.DurationFlag{
						Name:  "worker-timeout",
						Usage: "Per-file deadline before a worker is recorded as timed out (0 = none)",
						Value: time.Duration(0),
					},
					&cli.BoolFlag{
						Name:  "detect-lang",
						Usage: "Detect the language of each file",
					},
					&cli.BoolFlag{
						Name:  "ignore-common",
						Usage: "Drop common stopwords from the top-N ranking (totals unaffected)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit the structured run report as JSON on stdout",
					},
					&cli.StringFlag{
						Name:  "summary-dir",
						Usage: "Write summary.yaml into this directory",
					},
					&cli.BoolFlag{
						Name:  "no-history",
						Usage: "Skip recording this run in the history database",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "History database path (default: next to the binary)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the counter over HTTP (POST /count)",
				Action: serve.ServeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Value: ":8080",
						Usage: "Listen address",
					},
					&cli.IntFlag{
						Name:  "top",
						Value: 10,
						Usage: "Default top-N size when the request omits top_n",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:   "download",
				Usage:  "Download books as plain text files ready for counting",
				Action: download.DownloadAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "urls",
						Usage:    "Comma-separated book URLs",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Value: "books",
						Usage: "Directory to save downloaded books into",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "Concurrent downloads",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a machine-friendly quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:      "history",
				Usage:     "List recorded runs, or show one run's per-file results",
				ArgsUsage: "[run-id]",
				Action:    history.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "How many runs to list",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "History database path (default: next to the binary)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
