package analytics

import "testing"

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"The", true},
		{"AND", true},
		{"whale", false},
		{"x_train", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsStopword(tt.word); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestWithoutStopwords(t *testing.T) {
	counts := map[string]int{"the": 100, "whale": 7, "of": 50, "sea": 3}

	got := WithoutStopwords(counts)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (got %v)", len(got), got)
	}
	if got["whale"] != 7 || got["sea"] != 3 {
		t.Errorf("filtered map = %v", got)
	}
	// Input must be untouched.
	if len(counts) != 4 {
		t.Errorf("input map was mutated: %v", counts)
	}
}
