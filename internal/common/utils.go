package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SplitPaths splits a comma-separated flag value into trimmed, non-empty
// path patterns.
func SplitPaths(pathsStr string) []string {
	var patterns []string
	for _, p := range strings.Split(pathsStr, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// ExpandPaths expands glob patterns (`*`, `**`) into an ordered list of
// matching paths. Non-pattern arguments pass through untouched, so a
// missing literal path still reaches the scanner and is reported as a
// per-file failure instead of silently vanishing. Expansion order follows
// the input patterns; matches within a pattern are sorted.
func ExpandPaths(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			if !seen[pattern] {
				seen[pattern] = true
				files = append(files, pattern)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && info.IsDir() {
				continue // globs only yield regular files
			}
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	return files, nil
}
