// Package models defines data structures shared across the scanner,
// scheduler, and output layers.
package models

import "time"

// FileCount holds the frequency statistics for a single successfully
// scanned file. It is mutated only by the worker that owns the scan and
// is immutable once handed to the scheduler.
type FileCount struct {
	Path           string         `json:"path" yaml:"path"`
	TotalWords     int            `json:"total_words" yaml:"total_words"`
	UniqueWords    int            `json:"unique_words" yaml:"unique_words"`
	LinesProcessed int            `json:"lines_processed" yaml:"lines_processed"`
	Frequencies    map[string]int `json:"-" yaml:"-"`
	Duration       time.Duration  `json:"-" yaml:"-"`

	// Filled only when language detection is enabled.
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
}

// DurationSeconds reports the scan duration in seconds for serialized output.
func (fc *FileCount) DurationSeconds() float64 {
	return fc.Duration.Seconds()
}

// TokenCount is one (token, count) pair of a top-N ranking.
type TokenCount struct {
	Token string `json:"token" yaml:"token"`
	Count int    `json:"count" yaml:"count"`
}

// AggregateResult is the merged outcome of a whole run. Successful holds
// per-file results in the order the files were submitted; Failed holds one
// entry per file that could not be counted. Failed files contribute nothing
// to the totals or the combined map.
type AggregateResult struct {
	Successful []*FileCount
	Failed     []*FileError

	Combined            map[string]int
	TotalWords          int
	TotalUniqueWords    int
	TotalLinesProcessed int
}

// NewAggregateResult returns an empty aggregate ready to merge into.
func NewAggregateResult() *AggregateResult {
	return &AggregateResult{
		Combined: make(map[string]int),
	}
}
