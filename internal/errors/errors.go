// Package errors is stagehand's user-facing error: what failed, the
// underlying cause, and what to do about it. Rendered as:
//
//	✗ <what failed>
//
//	  <cause>
//
//	  <suggestion>
package errors

import (
	"errors"
	"strings"
)

// Code classifies an Error and picks the process exit status.
type Code string

const (
	ErrConfig   Code = "CONFIG"   // loading, validating or writing .stagehand.yaml
	ErrTerminal Code = "TERMINAL" // TTY setup and the Bubble Tea program
	ErrSequence Code = "SEQUENCE" // driving a sequencer that can no longer play
)

// ExitCode is the process status for errors carrying c.
func (c Code) ExitCode() int {
	switch c {
	case ErrConfig:
		return 2
	case ErrTerminal:
		return 3
	case ErrSequence:
		return 4
	}
	return 1
}

// Error is a coded error with an optional cause and suggestion.
type Error struct {
	Code       Code
	Message    string
	Suggestion string
	Cause      error
}

// New creates an Error with no cause.
func New(code Code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// Wrap attaches message to err under ErrTerminal, where most unclassified
// failures come from.
func Wrap(err error, message string) *Error {
	return &Error{Code: ErrTerminal, Message: message, Cause: err}
}

// WrapWithCode attaches a code, message and suggestion to err.
func WrapWithCode(err error, code Code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

func (e *Error) Error() string {
	sections := []string{"✗ " + e.Message}
	if e.Cause != nil {
		sections = append(sections, "  "+e.Cause.Error())
	}
	if e.Suggestion != "" {
		sections = append(sections, "  "+e.Suggestion)
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code, so
// errors.Is(err, &Error{Code: ErrConfig}) works through wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// IsCode reports whether err is, or wraps, an Error with code.
func IsCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// ExitCode returns the status to exit with for err: 0 for nil, the code's
// status for an Error, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code.ExitCode()
	}
	return 1
}
