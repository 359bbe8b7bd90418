// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for mta.

It provides a rich error type that bridges the gap between low-level storage
errors and the process exit status reported by the command line.

Architecture:

  - AppError: A struct containing a machine-readable code and an operator-facing message.
  - Mapping: Explicit mapping from AppError to a process exit code.

Every error that leaves the ingest layer should either be an [AppError] or be
wrapped as [Internal] by the caller.
*/
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// # Exit Codes

const (
	ExitInternal    = 1
	ExitValidation  = 2
	ExitConflict    = 3
	ExitNotFound    = 4
	ExitUnavailable = 5
)

// AppError is the canonical error type for mta.
//
// The Cause field is kept for logging and for [errors.Is] traversal; Message
// is what the operator sees on a failed run.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "CONFLICT").
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"error"`
	// ExitCode is the process exit status for a run that fails with this error.
	ExitCode int `json:"-"`
	// Cause is the underlying error.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	for _, d := range e.Details {
		fmt.Fprintf(&b, "; %s: %s", d.Field, d.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Is matches two AppErrors by Code so that sentinel values such as
// [dberr.ErrNotFound] compare equal to freshly constructed errors.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && t.Message == e.Message
}

// WithCause returns a copy of e carrying cause.
func (e *AppError) WithCause(cause error) *AppError {
	c := *e
	c.Cause = cause
	return &c
}

// # Client Errors

// NotFound creates a NOT_FOUND [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Stats") // Returns "Stats not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:     "NOT_FOUND",
		Message:  resource + " not found",
		ExitCode: ExitNotFound,
	}
}

// Conflict creates a CONFLICT [AppError] for duplicate or unique-constraint violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:     "CONFLICT",
		Message:  msg,
		ExitCode: ExitConflict,
	}
}

// ValidationError creates a VALIDATION_ERROR [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:     "VALIDATION_ERROR",
		Message:  msg,
		ExitCode: ExitValidation,
		Details:  details,
	}
}

// # Server Errors

// Internal creates an INTERNAL_ERROR [AppError] wrapping an unexpected error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:     "INTERNAL_ERROR",
		Message:  "unexpected failure",
		ExitCode: ExitInternal,
		Cause:    cause,
	}
}

// Unavailable creates an UNAVAILABLE [AppError] for an unreachable store or cache.
func Unavailable(cause error) *AppError {
	return &AppError{
		Code:     "UNAVAILABLE",
		Message:  "store unavailable",
		ExitCode: ExitUnavailable,
		Cause:    cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsConflict reports whether err carries a CONFLICT [AppError].
func IsConflict(err error) bool {
	ae := As(err)
	return ae != nil && ae.Code == "CONFLICT"
}

// ExitCodeOf returns the process exit code for err: 0 for nil, the
// AppError's code when present, and [ExitInternal] otherwise.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	if ae := As(err); ae != nil {
		return ae.ExitCode
	}
	return ExitInternal
}
