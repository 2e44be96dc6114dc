// Package detector guesses the language of a text file from a small sample
// of its content.
package detector

import (
	"io"
	"os"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// sampleBytes is how much of a file the detector reads. A few KB of prose
// is plenty for lingua's statistical models.
const sampleBytes = 8 * 1024

// Detector wraps a lingua language detector. It is safe for concurrent
// use; build one and share it.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over the languages book corpora are most likely to
// be in. Keeping the set small keeps model loading cheap.
func New() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.French,
		lingua.German,
		lingua.Spanish,
		lingua.Portuguese,
		lingua.Italian,
		lingua.Dutch,
		lingua.Russian,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the most likely language of text and a 0-1 confidence.
// Empty or undecidable text yields ("", 0).
func (d *Detector) Detect(text string) (string, float64) {
	if strings.TrimSpace(text) == "" {
		return "", 0
	}
	values := d.detector.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 {
		return "", 0
	}
	best := values[0]
	return strings.ToLower(best.Language().String()), best.Value()
}

// DetectFile samples the start of the file at path and detects its
// language. Any read failure is silent: detection is informational and
// must never fail a scan.
func (d *Detector) DetectFile(path string) (string, float64) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0
	}
	defer f.Close()

	sample := make([]byte, sampleBytes)
	n, err := io.ReadFull(f, sample)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", 0
	}
	return d.Detect(string(sample[:n]))
}
