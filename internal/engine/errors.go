package engine

import "errors"

// Errors returned by the engine. Call sites wrap them with detail, so
// compare with errors.Is.
var (
	// ErrInvalidCoordinate is returned for a coordinate or tag outside the lattice.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidSize is returned for a lattice size outside the supported range.
	ErrInvalidSize = errors.New("invalid grid size")

	// ErrInsufficientPalette is returned when more colors are requested than exist.
	ErrInsufficientPalette = errors.New("insufficient palette")
)
