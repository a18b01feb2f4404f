package patrol

import (
	"errors"

	"guardpatrol/internal/model"
)

// Sentinel errors for map building and analysis.
var (
	// ErrMalformedGrid indicates an empty map or rows of differing lengths.
	ErrMalformedGrid = errors.New("patrol: malformed grid")
	// ErrInvalidSymbol indicates a character outside ". # ^ v < >".
	ErrInvalidSymbol = model.ErrInvalidSymbol
	// ErrMultipleGuards indicates more than one guard marker in the map.
	ErrMultipleGuards = errors.New("patrol: multiple guards found")
	// ErrNoGuard indicates the map has no guard marker.
	ErrNoGuard = errors.New("patrol: no guard found")
	// ErrOutOfBounds indicates a cell access outside the grid.
	ErrOutOfBounds = errors.New("patrol: position out of bounds")
	// ErrRunIncomplete indicates loop analysis was requested before the guard left the grid.
	ErrRunIncomplete = errors.New("patrol: run has not exited the grid")
)
