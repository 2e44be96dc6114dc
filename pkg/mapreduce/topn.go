package mapreduce

import (
	"sort"

	"github.com/textfreq/textfreq/models"
)

// TopN returns the n highest-count tokens sorted by count descending.
// Equal counts are broken by ascending lexicographic token order, so the
// ranking is fully deterministic regardless of map iteration order.
// n = 0 yields an empty slice; n beyond the number of distinct tokens
// yields all of them.
func TopN(wordCounts map[string]int, n int) []models.TokenCount {
	if n <= 0 {
		return nil
	}

	ranked := make([]models.TokenCount, 0, len(wordCounts))
	for token, count := range wordCounts {
		ranked = append(ranked, models.TokenCount{Token: token, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Token < ranked[j].Token
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
