// Package errors defines all exported error sentinels for the acph library.
//
// This is the single source of truth for error values, so that
// errors.Is checks work the same way whether the caller imports the
// root acph package or this package directly.
package errors

import "errors"

// Build errors
var (
	ErrEmptyInput          = errors.New("acph: cannot build a tree with zero keys")
	ErrDuplicateKey        = errors.New("acph: duplicate key detected during construction")
	ErrPayloadSizeMismatch = errors.New("acph: payloads slice length does not match keys slice length")
	ErrKeyTooLong          = errors.New("acph: key exceeds configured maximum length")
)

// Lookup errors
var (
	ErrNotFound  = errors.New("acph: key not found")
	ErrEmptyTree = errors.New("acph: lookup against a nil tree")
)

// Construction option errors
var (
	ErrInvalidPrimeTable = errors.New("acph: prime table must be non-empty and contain only values in [2,251]")
)

// Forest errors
var (
	ErrDatasetCountMismatch = errors.New("acph: BuildForest datasets and payloads slices have different lengths")
)
