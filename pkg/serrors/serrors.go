// Package serrors defines the semantic error kinds used across the service.
// Each business-rule failure (invalid credentials, geofence violation, daily
// check-in limit, ...) is a sentinel Kind that callers branch on with
// errors.Is, while the Error wrapper carries an optional message and cause.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be matched with errors.Is/As through the
// serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds used by the check-in service. The transport layer maps each of these
// to an HTTP status; the use-case layer never converts between them.
var (
	// ErrInvalidCredentials indicates authentication failed. Unknown email
	// and wrong password both produce this kind so the two cases are
	// indistinguishable from the error alone.
	ErrInvalidCredentials = NewKind("INVALID_CREDENTIALS")
	// ErrNotFound indicates a referenced entity (gym, user, check-in) does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrMaxDistance indicates the user is farther than the allowed radius from the gym.
	ErrMaxDistance = NewKind("MAX_DISTANCE")
	// ErrMaxCheckIns indicates a check-in already exists for that user on that calendar day.
	ErrMaxCheckIns = NewKind("MAX_NUMBER_OF_CHECK_INS")
	// ErrLateValidation indicates a check-in validation was attempted after the validation window.
	ErrLateValidation = NewKind("LATE_VALIDATION")
	// ErrConflict indicates a state conflict, e.g. a registration with an email already in use.
	ErrConflict = NewKind("CONFLICT")
	// ErrUnauthorized indicates missing or invalid authentication on the transport.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped cause and an optional message. It fully supports errors.Is,
// errors.As and unwrapping: matching succeeds against either the kind
// sentinel or the wrapped cause.
//
// Error string formatting:
//   - msg and cause set: "<msg>: <cause>"
//   - only msg set: "<msg>"
//   - only cause set: "<cause>"
//   - neither set: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and a
// human-readable message. Use Wrap if there is also a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wrapping the
// provided cause and attaching a message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As to traverse
// the chain.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the semantic kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches against either the semantic kind sentinel or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
