// Package apperrors defines the error taxonomy shared by all services.
// Every error crossing a service boundary is one of these kinds; the
// handler layer maps kinds to HTTP status codes and the uniform JSON
// envelope, so nothing here ever crashes the process.
package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies an application error.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindConflict     Kind = "conflict"
	KindIneligible   Kind = "ineligible"
	KindUnauthorized Kind = "unauthorized"
)

// Error is an application error with a kind and a user-facing message.
// Ineligible errors additionally carry the donor's next eligible date.
type Error struct {
	Kind             Kind
	Message          string
	NextEligibleDate *time.Time
}

func (e *Error) Error() string {
	return e.Message
}

// Validation creates a KindValidation error.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a KindNotFound error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbidden creates a KindForbidden error.
func Forbidden(format string, args ...interface{}) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a KindConflict error.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized creates a KindUnauthorized error.
func Unauthorized(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// Ineligible creates a KindIneligible error carrying the date the donor
// becomes eligible again, which may be nil.
func Ineligible(message string, nextEligibleDate *time.Time) *Error {
	return &Error{Kind: KindIneligible, Message: message, NextEligibleDate: nextEligibleDate}
}

// KindOf returns the kind of err, or the empty Kind for non-application
// errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
