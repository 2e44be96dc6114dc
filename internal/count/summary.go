package count

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/textfreq/textfreq/models"
	"github.com/textfreq/textfreq/pkg/analytics"
	"github.com/textfreq/textfreq/pkg/mapreduce"
	"gopkg.in/yaml.v3"
)

func mapTop(agg *models.AggregateResult, n int, ignoreCommon bool) []models.TokenCount {
	counts := agg.Combined
	if ignoreCommon {
		counts = analytics.WithoutStopwords(counts)
	}
	return mapreduce.TopN(counts, n)
}

// WriteSummaryFile writes the structured run output as summary.yaml into
// dir.
func WriteSummaryFile(out FinalOutput, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create summary directory: %w", err)
	}

	outputPath := filepath.Join(dir, "summary.yaml")

	yamlBytes, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary to YAML: %w", err)
	}

	if err := os.WriteFile(outputPath, yamlBytes, 0644); err != nil {
		return "", fmt.Errorf("failed to write summary file: %w", err)
	}

	return outputPath, nil
}

// PrintHuman prints the human-readable run report to stdout.
func PrintHuman(agg *models.AggregateResult, top []models.TokenCount, elapsedSeconds float64) {
	fmt.Printf("Files processed: %d succeeded, %d failed\n", len(agg.Successful), len(agg.Failed))
	fmt.Printf("Total words: %d (%d unique) across %d lines in %.2fs\n",
		agg.TotalWords, agg.TotalUniqueWords, agg.TotalLinesProcessed, elapsedSeconds)

	for _, fe := range agg.Failed {
		fmt.Printf("FAILED %s: %s\n", fe.Path, fe.Detail())
	}

	if len(top) > 0 {
		fmt.Printf("\nTop %d words:\n", len(top))
		for i, tc := range top {
			fmt.Printf("%d. %s: %d\n", i+1, tc.Token, tc.Count)
		}
	}
}
