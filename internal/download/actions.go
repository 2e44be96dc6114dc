// Package download fetches remote books into a local directory of .txt
// files ready for counting.
package download

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/textfreq/textfreq/models"
	"github.com/textfreq/textfreq/pkg/extractor"
	"github.com/textfreq/textfreq/pkg/fetcher"
	"github.com/textfreq/textfreq/pkg/storage"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func DownloadAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	urlsStr := c.String("urls")
	if urlsStr == "" {
		return fmt.Errorf("no URLs provided via --urls flag")
	}
	var urls []string
	for _, u := range strings.Split(urlsStr, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}

	config := &models.DownloadConfig{
		URLs:        urls,
		OutputDir:   c.String("output-dir"),
		WorkerCount: c.Int("workers"),
	}

	store, err := storage.New(config.OutputDir)
	if err != nil {
		return err
	}

	saved, failed := run(logger, config, store)
	fmt.Printf("Downloaded %d of %d books to %s\n", len(saved), len(config.URLs), config.OutputDir)
	for _, path := range saved {
		fmt.Println(path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d downloads failed", failed, len(config.URLs))
	}
	return nil
}

// run downloads every URL with bounded concurrency. One failed download
// never aborts the others; the group limit only bounds parallelism.
func run(logger *slog.Logger, config *models.DownloadConfig, store *storage.Storage) ([]string, int) {
	f := fetcher.NewFetcher()

	workers := config.WorkerCount
	if workers <= 0 {
		workers = 4
	}
	logger.Info("starting downloads", "url_count", len(config.URLs), "workers", workers)

	var g errgroup.Group
	g.SetLimit(workers)

	saved := make([]string, len(config.URLs))
	errs := make([]error, len(config.URLs))
	for i, rawURL := range config.URLs {
		i, rawURL := i, rawURL
		g.Go(func() error {
			path, err := downloadOne(logger, f, store, rawURL)
			if err != nil {
				logger.Error("download failed", "url", rawURL, "error", err)
				errs[i] = err
				return nil
			}
			logger.Info("download finished", "url", rawURL, "path", path)
			saved[i] = path
			return nil
		})
	}
	_ = g.Wait()

	var ok []string
	failed := 0
	for i := range config.URLs {
		if errs[i] != nil {
			failed++
			continue
		}
		ok = append(ok, saved[i])
	}
	return ok, failed
}

// downloadOne fetches a single book and writes it as plain text. HTML
// responses are reduced to their main content first; anything else is
// saved as-is.
func downloadOne(logger *slog.Logger, f *fetcher.Fetcher, store *storage.Storage, rawURL string) (string, error) {
	body, contentType, err := f.Get(rawURL)
	if err != nil {
		return "", err
	}

	text := string(body)
	if strings.Contains(contentType, "text/html") {
		extracted, err := extractor.ExtractText(rawURL, text)
		if err != nil {
			return "", fmt.Errorf("failed to extract text: %w", err)
		}
		logger.Debug("extracted HTML content", "url", rawURL, "bytes", len(extracted))
		text = extracted
	}

	return store.SaveFile(storage.SavePathFor(rawURL), []byte(text))
}
