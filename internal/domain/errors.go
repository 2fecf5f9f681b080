package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three fatal failure classes of a generation run.
var (
	ErrMappingLoad   = errors.New("failed to load mapping")
	ErrInvalidAlias  = errors.New("invalid alias")
	ErrDocumentWrite = errors.New("failed to write dynamic configuration")
)

// LoadError reports a missing, unreadable or malformed mapping source.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return describe(ErrMappingLoad, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrMappingLoad, e.Err}
}

// ValidationError names the first alias that failed validation.
type ValidationError struct {
	Alias string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrInvalidAlias, e.Alias, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidAlias, e.Err}
}

// WriteError reports that the output document could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return describe(ErrDocumentWrite, e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrDocumentWrite, e.Err}
}

// describe renders "<sentinel> <path>: <cause>", leaving out an unknown path.
func describe(sentinel error, path string, cause error) string {
	if path == "" {
		return fmt.Sprintf("%s: %v", sentinel, cause)
	}
	return fmt.Sprintf("%s %s: %v", sentinel, path, cause)
}
