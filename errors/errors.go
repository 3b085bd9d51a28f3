// Package errors provides error handling for cleantype.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := load(); err != nil {
//	    return errors.Wrap(err, "failed to load rules")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "pass the type of std::mem_fn(&Lambda::operator())")
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnrecognizedScheme) {
//	    // fall back to the raw string
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
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors for the type-name pipeline.
// Wrap these with errors.Wrap() or errors.WithDetail() to add context while
// preserving identity for errors.Is().
var (
	// ErrUnrecognizedScheme indicates a member-function wrapper type string
	// that matches none of the known compiler/library naming schemes
	ErrUnrecognizedScheme = New("unrecognized member-function naming scheme")

	// ErrMalformedSignature indicates a recognized wrapper whose parameter
	// list, member-pointer declarator or return type could not be located
	ErrMalformedSignature = New("malformed member-function signature")

	// ErrUnmatchedParenthesis indicates text without a complete trailing
	// parenthesis group
	ErrUnmatchedParenthesis = New("no matched parenthesis group")

	// ErrInvalidConfig indicates a configuration value outside its allowed range
	ErrInvalidConfig = New("invalid configuration")
)

// IsUnrecognizedScheme checks if an error is or wraps ErrUnrecognizedScheme
func IsUnrecognizedScheme(err error) bool {
	return err != nil && Is(err, ErrUnrecognizedScheme)
}

// IsMalformedSignature checks if an error is or wraps ErrMalformedSignature
func IsMalformedSignature(err error) bool {
	return err != nil && Is(err, ErrMalformedSignature)
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}
