package importers

import (
	"errors"
	"fmt"
)

// ErrConflictingState is returned when importing into a non-empty database
// without merge enabled.
var ErrConflictingState = errors.New("to prevent conflicts, you can only import from z with an empty database; " +
	"if you wish to merge the two, specify the -merge flag")

// ErrInvalidEncoding is returned when the source file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// Per-line error kinds. A line failing with one of these is skipped.
var (
	ErrInvalidEntry     = errors.New("invalid entry")
	ErrInvalidEpoch     = errors.New("invalid epoch")
	ErrInvalidRank      = errors.New("invalid rank")
	ErrUnresolvablePath = errors.New("could not resolve path")
	ErrExcludedPath     = errors.New("excluded path")
)

// SourceError reports that the z database itself could not be read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("could not read z database: %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// EntryError describes why a single line could not be imported. Kind is one
// of the per-line sentinels; Text is the offending field.
type EntryError struct {
	Kind error
	Text string
	Err  error
}

func newEntryError(kind error, text string, cause error) *EntryError {
	return &EntryError{Kind: kind, Text: text, Err: cause}
}

func (e *EntryError) Error() string {
	msg := e.Kind.Error()
	if e.Text != "" {
		msg += ": " + e.Text
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EntryError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// LineError is an EntryError tagged with its 1-based line number.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}
