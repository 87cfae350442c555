// Package errs defines the typed errors raised by the hotel domain and use cases.
//
// Every error carries a machine-readable Kind; the HTTP boundary decides how to
// render it. Sentinels are matched with errors.Is by kind (and by message when
// the target carries one).
package errs

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindValidation        Kind = "VALIDATION"
	KindNotFound          Kind = "NOT_FOUND"
	KindConflict          Kind = "CONFLICT"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
)

var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrConflict          = &Error{Kind: KindConflict}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
)

type Error struct {
	Kind    Kind
	Message string
	// Violations lists every rule broken, for validation errors.
	Violations []string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return strings.ToLower(string(e.Kind))
}

// Is matches targets of the same kind. A target with a message must also match it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

func Validation(violations ...string) *Error {
	return &Error{
		Kind:       KindValidation,
		Message:    strings.Join(violations, ", "),
		Violations: append([]string(nil), violations...),
	}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func InvalidTransition(message string) *Error {
	return &Error{Kind: KindInvalidTransition, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ViolationsOf returns the violations carried by a validation error.
func ViolationsOf(err error) []string {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindValidation {
		return e.Violations
	}
	return nil
}
