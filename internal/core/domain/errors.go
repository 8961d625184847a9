package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreClosed indicates an operation on a closed record store.
	ErrStoreClosed = errors.New("record store closed")
)

// RequiredElementMissingError reports that an exactly-one schema field had
// no matching element. Construction of the enclosing record aborts; partial
// records are never emitted.
type RequiredElementMissingError struct {
	// Record names the record shape being built, e.g. "name" or "mdb".
	Record string

	// Element is the missing element's local name.
	Element string
}

func (e *RequiredElementMissingError) Error() string {
	return fmt.Sprintf("%s: required element %q missing", e.Record, e.Element)
}

// MalformedDateError reports date text that was present but not parseable
// as DD.MM.YYYY, or that denotes an impossible calendar date.
type MalformedDateError struct {
	// Element is the local name of the date element.
	Element string

	// Text is the offending element text.
	Text string

	// Err is the underlying cause, if any.
	Err error
}

func (e *MalformedDateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: malformed date %q: %v", e.Element, e.Text, e.Err)
	}
	return fmt.Sprintf("%s: malformed date %q", e.Element, e.Text)
}

func (e *MalformedDateError) Unwrap() error {
	return e.Err
}

// EmptyInputError reports an input tree without its top-level schema
// element. The member stream treats this as an empty roster; the
// printed-matter stream fails because exactly one document is mandatory.
type EmptyInputError struct {
	// Schema names the expected schema, e.g. "dokument".
	Schema string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("input contains no %q element", e.Schema)
}
