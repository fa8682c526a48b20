package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrDataFileMissing signals that the backing data file does not exist.
	ErrDataFileMissing = errors.New("data file not found")

	// ErrEmptyDiary signals a record submitted without a diary name.
	ErrEmptyDiary = errors.New("diary name cannot be empty")

	// ErrInvalidCount signals a count that does not parse as an integer.
	ErrInvalidCount = errors.New("article count must be an integer")
)

// ParseError describes a data-file line that does not match the
// "YYYY-MM-DD,count,diary" shape. It is distinguishable from
// ErrDataFileMissing so callers can tell a missing file from a
// corrupted one.
type ParseError struct {
	Path   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: malformed record: %s", e.Path, e.Line, e.Reason)
}
