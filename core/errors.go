package core

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrFetch    = errors.New("fetch failed")
	ErrNotFound = errors.New("article not found")
	ErrStorage  = errors.New("storage read failed")
	ErrFormat   = errors.New("template format error")
)

// FetchError reports a failed page retrieval: either a transport error or a
// non-200 status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("unexpected status %d for %s", e.StatusCode, e.URL)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// NotFoundError reports that no article URL could be discovered for a query.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no article found for %q", e.Query)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StorageError reports that a template or other remote file could not be read.
type StorageError struct {
	ID  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.ID, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// FormatError reports a template that cannot be filled from a Character.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("template: %s %q", e.Reason, e.Field)
	}
	return "template: " + e.Reason
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }
