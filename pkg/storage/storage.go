// Package storage writes downloaded books to disk.
package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

type Storage struct {
	// Dir is the directory downloaded files are written into.
	Dir string
}

func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}
	return &Storage{Dir: dir}, nil
}

func (s *Storage) SaveFile(name string, content []byte) (string, error) {
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return path, nil
}

// SavePathFor generates a filesystem-friendly .txt filename from a URL.
func SavePathFor(rawURL string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		// Fallback for invalid URLs
		safeString := strings.ReplaceAll(rawURL, "https://", "")
		safeString = strings.ReplaceAll(safeString, "http://", "")
		safeString = strings.ReplaceAll(safeString, "/", "_")
		return safeString + ".txt"
	}

	host := strings.ReplaceAll(parsedURL.Host, ".", "_")

	// Sanitize path to avoid collisions between books on the same host.
	path := strings.Trim(parsedURL.Path, "/")
	path = strings.ReplaceAll(path, "/", "-")
	path = strings.ReplaceAll(path, ".", "_")

	if path != "" {
		return fmt.Sprintf("%s-%s.txt", host, path)
	}
	return host + ".txt"
}
