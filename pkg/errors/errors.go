// Package errors defines the typed errors returned while loading uikit config.
package errors

import (
	"fmt"
	"strconv"
)

// Position locates a value in a config file. Zero Line or Column means unknown.
type Position struct {
	Path   string
	Line   int
	Column int
}

// String renders path, path:line or path:line:column, whichever is known.
func (p Position) String() string {
	if p.Path == "" {
		return ""
	}
	s := p.Path
	if p.Line > 0 {
		s += ":" + strconv.Itoa(p.Line)
		if p.Column > 0 {
			s += ":" + strconv.Itoa(p.Column)
		}
	}
	return s
}

// ParseError reports a config file that could not be read or decoded.
type ParseError struct {
	Position
	Message string
	Err     error
}

// NewParseError wraps err with the position it was reported at.
func NewParseError(pos Position, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Position: pos, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return withPosition("parse error", e.Position, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a config value outside its allowed range. Field is
// the Go field path, e.g. "Pagination.PageSize".
type ValidationError struct {
	Position
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError without a file position;
// callers that know the source document set Position afterwards.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	message := e.Message
	if e.Field != "" {
		message = e.Field + ": " + message
	}
	return withPosition("validation error", e.Position, message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func withPosition(kind string, pos Position, message string) string {
	if where := pos.String(); where != "" {
		return fmt.Sprintf("%s: %s: %s", kind, where, message)
	}
	return fmt.Sprintf("%s: %s", kind, message)
}
