// Package errors provides error handling for forge.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors for the generation pipeline
//
// Usage:
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check pipeline failures
//	if errors.Is(err, errors.ErrParse) {
//	    // spec file could not be deserialized
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Mark ties an error to a sentinel so errors.Is matches the sentinel while
// the original cause stays in the chain
var Mark = crdb.Mark

// Sentinel errors for the generation pipeline.
// Every stage wraps one of these with its own context, so callers can
// classify a failure with errors.Is() without losing the original cause.
var (
	// ErrFileNotFound indicates the spec file path could not be opened.
	// Wrapping context always includes the path.
	ErrFileNotFound = New("spec file not found")

	// ErrParse indicates deserialization of a recognized format failed
	ErrParse = New("spec parse failed")

	// ErrUnsupportedExtension indicates the spec path carries an extension
	// that cannot be interpreted as text. This is a caller/environment
	// fault, not a spec fault, and is never silently defaulted.
	ErrUnsupportedExtension = New("unsupported spec file extension")

	// ErrExtraction indicates the extractor could not turn the canonical
	// document into an intermediate representation
	ErrExtraction = New("spec extraction failed")

	// ErrGeneration indicates a language backend failed while emitting the
	// client library. Wrapping context includes which backend.
	ErrGeneration = New("code generation failed")
)

// IsFileNotFound reports whether err is or wraps ErrFileNotFound
func IsFileNotFound(err error) bool {
	return err != nil && Is(err, ErrFileNotFound)
}

// IsParse reports whether err is or wraps ErrParse
func IsParse(err error) bool {
	return err != nil && Is(err, ErrParse)
}

// IsUnsupportedExtension reports whether err is or wraps ErrUnsupportedExtension
func IsUnsupportedExtension(err error) bool {
	return err != nil && Is(err, ErrUnsupportedExtension)
}

// IsExtraction reports whether err is or wraps ErrExtraction
func IsExtraction(err error) bool {
	return err != nil && Is(err, ErrExtraction)
}

// IsGeneration reports whether err is or wraps ErrGeneration
func IsGeneration(err error) bool {
	return err != nil && Is(err, ErrGeneration)
}
