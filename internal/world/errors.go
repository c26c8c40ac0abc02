package world

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrNoBaseSite is returned when no cell satisfies the base placement
	// constraint.
	ErrNoBaseSite = errors.New("no valid base site")
)

// BoundsError is the panic value raised when a coordinate falls outside the
// grid. Out-of-bounds access is a caller bug, so it is never returned.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("world: coordinate (%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}
