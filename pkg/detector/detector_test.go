package detector

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetect(t *testing.T) {
	d := New()

	lang, conf := d.Detect("It was a bright cold day in April, and the clocks were striking thirteen.")
	if lang != "english" {
		t.Errorf("language = %q, want english", lang)
	}
	if conf <= 0 {
		t.Errorf("confidence = %f, want > 0", conf)
	}
}

func TestDetectEmpty(t *testing.T) {
	d := New()

	lang, conf := d.Detect("   \n\t ")
	if lang != "" || conf != 0 {
		t.Errorf("Detect(blank) = (%q, %f), want (\"\", 0)", lang, conf)
	}
}

func TestDetectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	content := "Longtemps, je me suis couché de bonne heure. Parfois, à peine ma bougie éteinte, " +
		"mes yeux se fermaient si vite que je n'avais pas le temps de me dire: je m'endors."
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d := New()
	lang, conf := d.DetectFile(path)
	if lang != "french" {
		t.Errorf("language = %q, want french", lang)
	}
	if conf <= 0 {
		t.Errorf("confidence = %f, want > 0", conf)
	}
}

func TestDetectFileMissing(t *testing.T) {
	d := New()
	lang, conf := d.DetectFile("no/such/file.txt")
	if lang != "" || conf != 0 {
		t.Errorf("DetectFile(missing) = (%q, %f), want silent zero values", lang, conf)
	}
}
