// Package apperrors defines the typed failures returned by services.
//
// Every failure carries a Kind that the HTTP layer maps to a status code and a
// short human-readable Message. The wrapped cause is meant for logs only.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindValidation   Kind = "validation"
	KindUpstream     Kind = "upstream"
)

// Error is a typed service failure
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports sentinel equality by kind and message, so a wrapped copy of a
// sentinel still matches it
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Wrap returns a copy of e carrying cause
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Err: cause}
}

// New creates an Error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error of the given kind with a formatted message
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound, Conflict, Validation, Unauthorized and Upstream are shorthands for New
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func Validation(message string) *Error   { return New(KindValidation, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }

// Upstream wraps a store or generator failure
func Upstream(message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: cause}
}

var (
	ErrCourseNotFound         = NotFound("Course not found.")
	ErrModuleNotFound         = NotFound("Module not found.")
	ErrLessonNotFound         = NotFound("Lesson not found.")
	ErrUserNotFound           = NotFound("User not found.")
	ErrNoProgressFound        = NotFound("No progress found for this course.")
	ErrAlreadyEnrolled        = Conflict("Already enrolled in this course.")
	ErrNotAuthorized          = Unauthorized("You are not authorized to access this course.")
	ErrNotCourseAuthor        = Unauthorized("Only the author can modify this course.")
	ErrNotEnrolled            = Unauthorized("Only enrolled users can rate this course.")
	ErrCourseEmpty            = Validation("Course has no modules.")
	ErrNoLessonsInFirstModule = Validation("The first module of this course has no lessons.")
	ErrProgressUpdateFailed   = Upstream("Failed to update progress.", nil)
)

// KindOf returns the kind of err, KindUpstream for untyped errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUpstream
}

// MessageOf returns the user-visible message of err
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "An unexpected error occurred."
}

// HTTPStatus maps a kind to its HTTP status code
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
