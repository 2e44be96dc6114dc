package count

import "github.com/textfreq/textfreq/models"

// ResultSummary holds the per-file summary data emitted on stdout and into
// summary.yaml.
type ResultSummary struct {
	Path            string  `json:"path" yaml:"path"`
	Status          string  `json:"status" yaml:"status"`
	Error           string  `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind       string  `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	TotalWords      int     `json:"total_words,omitempty" yaml:"total_words,omitempty"`
	UniqueWords     int     `json:"unique_words,omitempty" yaml:"unique_words,omitempty"`
	LinesProcessed  int     `json:"lines_processed,omitempty" yaml:"lines_processed,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty" yaml:"duration_seconds,omitempty"`
	Language        string  `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConf    float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalFiles       int     `json:"total_files" yaml:"total_files"`
	Successful       int     `json:"successful" yaml:"successful"`
	Failed           int     `json:"failed" yaml:"failed"`
	TotalWords       int     `json:"total_words" yaml:"total_words"`
	UniqueWords      int     `json:"unique_words" yaml:"unique_words"`
	TotalLines       int     `json:"total_lines" yaml:"total_lines"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string              `json:"status" yaml:"status"`
	Results []ResultSummary     `json:"results" yaml:"results"`
	Top     []models.TokenCount `json:"top,omitempty" yaml:"top,omitempty"`
	Stats   Stats               `json:"stats" yaml:"stats"`
}

// BuildSummary converts a successful FileCount into its summary row.
func BuildSummary(fc *models.FileCount) ResultSummary {
	return ResultSummary{
		Path:            fc.Path,
		Status:          "success",
		TotalWords:      fc.TotalWords,
		UniqueWords:     fc.UniqueWords,
		LinesProcessed:  fc.LinesProcessed,
		DurationSeconds: fc.DurationSeconds(),
		Language:        fc.Language,
		LanguageConf:    fc.LanguageConfidence,
	}
}

// BuildFailedSummary converts a per-file failure into its summary row.
func BuildFailedSummary(fe *models.FileError) ResultSummary {
	return ResultSummary{
		Path:      fe.Path,
		Status:    "failed",
		Error:     fe.Detail(),
		ErrorKind: string(fe.Kind),
	}
}

// BuildFinalOutput assembles the full structured output for an aggregate.
// ignoreCommon drops stopwords from the top-N ranking; the totals are
// always left untouched.
func BuildFinalOutput(agg *models.AggregateResult, topN int, elapsedSeconds float64, ignoreCommon bool) FinalOutput {
	out := FinalOutput{
		Status:  "success",
		Results: make([]ResultSummary, 0, len(agg.Successful)+len(agg.Failed)),
		Stats: Stats{
			TotalFiles:       len(agg.Successful) + len(agg.Failed),
			Successful:       len(agg.Successful),
			Failed:           len(agg.Failed),
			TotalWords:       agg.TotalWords,
			UniqueWords:      agg.TotalUniqueWords,
			TotalLines:       agg.TotalLinesProcessed,
			TotalTimeSeconds: elapsedSeconds,
		},
	}
	for _, fc := range agg.Successful {
		out.Results = append(out.Results, BuildSummary(fc))
	}
	for _, fe := range agg.Failed {
		out.Results = append(out.Results, BuildFailedSummary(fe))
	}
	if len(agg.Failed) > 0 {
		out.Status = "partial"
	}
	if len(agg.Successful) == 0 && len(agg.Failed) == 0 {
		out.Status = "empty"
	}
	out.Top = mapTop(agg, topN, ignoreCommon)
	return out
}
