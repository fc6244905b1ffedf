package catalog

import "fmt"

// ParseError reports a catalog file that could not be decoded
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse catalog %s: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// JobError reports an invalid entry in a catalog file
type JobError struct {
	Path  string
	Index int
	ID    int
	Cause error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("invalid job at %s[%d] (id %d): %v", e.Path, e.Index, e.ID, e.Cause)
}

func (e *JobError) Unwrap() error {
	return e.Cause
}
