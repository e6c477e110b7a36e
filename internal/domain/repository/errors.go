// Package repository contains the repository interfaces and related errors.
package repository

import "errors"

// Repository errors define common error conditions across all repositories.
// These errors are used to communicate specific failure conditions
// from the catalog store to the application layer.

var (
	// ErrSpaceNotFound is returned when a dimension space cannot be found by name or ID.
	ErrSpaceNotFound = errors.New("dimension space not found")

	// ErrUnitNotFound is returned when a unit cannot be found in a space.
	ErrUnitNotFound = errors.New("unit not found")

	// ErrDuplicateSpace is returned when a dimension space name is declared twice.
	ErrDuplicateSpace = errors.New("dimension space already exists")

	// ErrDuplicateUnit is returned when a unit name is registered twice in one space.
	ErrDuplicateUnit = errors.New("unit already exists")

	// ErrInvalidInput is returned when repository receives invalid input.
	ErrInvalidInput = errors.New("invalid input provided")
)

// IsNotFoundError checks if the error is a not found error.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error indicates a resource was not found
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrSpaceNotFound) ||
		errors.Is(err, ErrUnitNotFound)
}

// IsDuplicateError checks if the error is a duplicate entry error.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error indicates a duplicate registration
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateSpace) ||
		errors.Is(err, ErrDuplicateUnit)
}
