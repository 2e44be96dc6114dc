package mapreduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/textfreq/textfreq/models"
)

func TestTopN(t *testing.T) {
	counts := map[string]int{"the": 10, "of": 7, "whale": 3, "sea": 3, "ahab": 1}

	got := TopN(counts, 3)
	want := []models.TokenCount{
		{Token: "the", Count: 10},
		{Token: "of", Count: 7},
		{Token: "sea", Count: 3}, // ties break lexicographically ascending
	}
	assert.Equal(t, want, got)
}

func TestTopNZero(t *testing.T) {
	counts := map[string]int{"a": 1, "b": 2}
	assert.Empty(t, TopN(counts, 0))
	assert.Empty(t, TopN(counts, -1))
}

func TestTopNBeyondDistinct(t *testing.T) {
	counts := map[string]int{"a": 1, "b": 3, "c": 2}

	got := TopN(counts, 100)
	want := []models.TokenCount{
		{Token: "b", Count: 3},
		{Token: "c", Count: 2},
		{Token: "a", Count: 1},
	}
	assert.Equal(t, want, got)
}

func TestTopNTieBreakDeterministic(t *testing.T) {
	counts := map[string]int{"delta": 5, "alpha": 5, "charlie": 5, "bravo": 5}

	want := []models.TokenCount{
		{Token: "alpha", Count: 5},
		{Token: "bravo", Count: 5},
		{Token: "charlie", Count: 5},
		{Token: "delta", Count: 5},
	}
	// Map iteration order varies; the ranking must not.
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, TopN(counts, 4))
	}
}

func TestTopNEmptyMap(t *testing.T) {
	assert.Empty(t, TopN(map[string]int{}, 10))
}
