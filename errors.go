package supercluster

import "errors"

// Sentinel errors surfaced by the public API. Wrap with fmt.Errorf("...: %w", ...)
// for context; test with errors.Is.
var (
	// ErrInvalidInput is returned by Load when the options fail Validate or
	// a point projects to a non-finite coordinate.
	ErrInvalidInput = errors.New("supercluster: invalid input")

	// ErrClusterNotFound is returned by GetChildren, GetLeaves and
	// GetClusterExpansionZoom when the id does not resolve to a cluster in
	// the pyramid.
	ErrClusterNotFound = errors.New("supercluster: cluster not found")

	// ErrOutOfRange is returned by GetTile when the tile's x or y falls
	// outside the tile grid at the requested zoom.
	ErrOutOfRange = errors.New("supercluster: coordinates out of range")
)
