// Package models defines data structures for configuration and results.
package models

import "time"

// CountConfig holds runtime configuration for count runs.
// All values come from CLI flags or the HTTP request body, not external
// config files.
type CountConfig struct {
	Paths          []string
	MaxWorkers     int
	ProgressEvery  int
	TopN           int
	DetectLanguage bool
	WorkerTimeout  time.Duration
}

// DownloadConfig holds runtime configuration for the download command.
type DownloadConfig struct {
	URLs        []string
	OutputDir   string
	WorkerCount int
}
