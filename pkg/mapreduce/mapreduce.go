// Package mapreduce merges per-file frequency maps and ranks tokens.
package mapreduce

// Merge adds every count of src into dst, treating absent tokens as zero.
// Merging is associative and commutative: any grouping or order of merges
// yields the same final map. Merging with an empty map is a no-op.
func Merge(dst, src map[string]int) {
	for token, count := range src {
		dst[token] += count
	}
}

// Reduce aggregates a slice of frequency maps into a single new map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)
	for _, counts := range intermediate {
		Merge(finalResults, counts)
	}
	return finalResults
}
