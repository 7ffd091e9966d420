// Package errors defines the sentinel errors reported by the currenttime
// command. All of them can be checked with errors.Is().
//
// This package MUST NOT import any other internal packages.
package errors

import "errors"

// Sentinel errors for error categorization.
var (
	// ErrInvalidOutputFormat indicates an unknown --output value.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidInstant indicates an --at value matching none of the
	// accepted layouts.
	ErrInvalidInstant = errors.New("invalid instant")

	// ErrInvalidTimezone indicates a timezone name that could not be loaded.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidSymbol indicates a configured alias symbol that is not a
	// single character or that shadows a built-in symbol.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrSymbolCycle indicates an alias template that refers to another
	// alias.
	ErrSymbolCycle = errors.New("alias refers to another alias")

	// ErrInvalidCount indicates a tick count that is negative, or zero when
	// a fixed start instant was requested.
	ErrInvalidCount = errors.New("invalid count")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
