package models

import "fmt"

// ErrorKind is the closed set of per-file failure classifications.
type ErrorKind string

const (
	// ErrNotFound: the path does not exist.
	ErrNotFound ErrorKind = "not_found"
	// ErrIsDirectory: the path names a directory, not a regular file.
	ErrIsDirectory ErrorKind = "is_directory"
	// ErrIO: a read failed mid-scan; all partial counts were discarded.
	ErrIO ErrorKind = "io_error"
	// ErrWorkerCrashed: the worker goroutine panicked.
	ErrWorkerCrashed ErrorKind = "worker_crashed"
	// ErrWorkerTimeout: the worker missed its per-file deadline.
	ErrWorkerTimeout ErrorKind = "worker_timeout"
)

// FileError records why a single file could not be counted. A FileError is
// always scoped to one file; it never aborts other workers or the run.
type FileError struct {
	Path string
	Kind ErrorKind
	Err  error
}

func NewFileError(path string, kind ErrorKind, err error) *FileError {
	return &FileError{Path: path, Kind: kind, Err: err}
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Kind)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *FileError) Unwrap() error {
	return e.Err
}

// Detail returns the underlying cause as a string, falling back to the kind.
func (e *FileError) Detail() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}
