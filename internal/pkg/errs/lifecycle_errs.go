package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel for order status changes that the
	// lifecycle table does not allow, including lost optimistic concurrency races.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrPreconditionFailed is the sentinel for transitions whose status pair is
	// allowed but whose extra requirements are not met.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrUnauthorized is the sentinel for actors acting on objects they do not own.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrFormatNotSupported is the sentinel for recognizable but unsupported
	// input formats.
	ErrFormatNotSupported = errors.New("format not supported")

	// ErrInvalidFormat is the sentinel for malformed binary input.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrDownstreamFailure is the sentinel for collaborator calls that failed.
	ErrDownstreamFailure = errors.New("downstream failure")
)

// InvalidTransitionError reports a status change the lifecycle does not allow.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError without an
// underlying cause.
func NewInvalidTransitionError(from string, to string) *InvalidTransitionError {
	return &InvalidTransitionError{
		From: from,
		To:   to,
	}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping
// an underlying cause.
func NewInvalidTransitionErrorWithCause(from string, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{
		From:  from,
		To:    to,
		Cause: cause,
	}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PreconditionFailedError reports an allowed transition blocked by an unmet
// requirement, for example a missing photo.
type PreconditionFailedError struct {
	Requirement string
	Cause       error
}

// NewPreconditionFailedError creates a PreconditionFailedError without an
// underlying cause.
func NewPreconditionFailedError(requirement string) *PreconditionFailedError {
	return &PreconditionFailedError{
		Requirement: requirement,
	}
}

// NewPreconditionFailedErrorWithCause creates a PreconditionFailedError wrapping
// an underlying cause.
func NewPreconditionFailedErrorWithCause(requirement string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{
		Requirement: requirement,
		Cause:       cause,
	}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPreconditionFailed, e.Requirement, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Requirement))
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// UnauthorizedError reports an actor acting outside its role or ownership.
type UnauthorizedError struct {
	Action string
	Cause  error
}

// NewUnauthorizedError creates an UnauthorizedError without an underlying cause.
func NewUnauthorizedError(action string) *UnauthorizedError {
	return &UnauthorizedError{
		Action: action,
	}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an
// underlying cause.
func NewUnauthorizedErrorWithCause(action string, cause error) *UnauthorizedError {
	return &UnauthorizedError{
		Action: action,
		Cause:  cause,
	}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthorized, e.Action))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// FormatNotSupportedError reports input in a recognizable format the system
// deliberately rejects, for example an ASCII STL file.
type FormatNotSupportedError struct {
	Format string
}

// NewFormatNotSupportedError creates a FormatNotSupportedError.
func NewFormatNotSupportedError(format string) *FormatNotSupportedError {
	return &FormatNotSupportedError{
		Format: format,
	}
}

func (e *FormatNotSupportedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrFormatNotSupported, e.Format))
}

func (e *FormatNotSupportedError) Unwrap() error {
	return ErrFormatNotSupported
}

// InvalidFormatError reports malformed input that could not be parsed at all.
type InvalidFormatError struct {
	ParamName string
	Cause     error
}

// NewInvalidFormatError creates an InvalidFormatError without an underlying cause.
func NewInvalidFormatError(paramName string) *InvalidFormatError {
	return &InvalidFormatError{
		ParamName: paramName,
	}
}

// NewInvalidFormatErrorWithCause creates an InvalidFormatError wrapping an
// underlying cause.
func NewInvalidFormatErrorWithCause(paramName string, cause error) *InvalidFormatError {
	return &InvalidFormatError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *InvalidFormatError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidFormat, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInvalidFormat, e.ParamName))
}

func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

// DownstreamFailureError reports a failed call to an external collaborator such
// as the payment gateway or object storage.
type DownstreamFailureError struct {
	System string
	Cause  error
}

// NewDownstreamFailureError creates a DownstreamFailureError wrapping the
// collaborator error.
func NewDownstreamFailureError(system string, cause error) *DownstreamFailureError {
	return &DownstreamFailureError{
		System: system,
		Cause:  cause,
	}
}

func (e *DownstreamFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrDownstreamFailure, e.System, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDownstreamFailure, e.System))
}

func (e *DownstreamFailureError) Unwrap() error {
	return ErrDownstreamFailure
}
