package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedLine is returned when a description line has an input without a destination.
var ErrMalformedLine = errors.New("malformed line")

// ErrFileOpen is returned when a description source cannot be opened or read.
var ErrFileOpen = errors.New("cannot open description")

// ErrDescriptionNotFound is returned by loaders when the named description does not exist.
var ErrDescriptionNotFound = errors.New("description not found")

// MalformedLineError reports a transition line with an odd number of trailing fields.
type MalformedLineError struct {
	Source string
	Line   int
	Fields int
}

func (e *MalformedLineError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: line %d has %d trailing fields, want input/destination pairs", ErrMalformedLine, e.Line, e.Fields)
	}
	return fmt.Sprintf("%s: %s:%d has %d trailing fields, want input/destination pairs", ErrMalformedLine, e.Source, e.Line, e.Fields)
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// SourceError reports a description source that could not be read.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrFileOpen, e.Source, e.Err)
}

func (e *SourceError) Is(target error) bool {
	return target == ErrFileOpen
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
