// Package mapping builds and checks the LED-index → grid-cell tables that
// stand in for rectangular wiring whenever the physical layout is a circle,
// ring, arc, ray burst, or free-form position list.
//
// Tables are derived data: generated once from a geometry.Model, persisted
// with the pattern, and regenerated deterministically whenever they go
// missing or stale. They are never mutated in place.
package mapping

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates a table whose length disagrees with the
	// geometry's declared LED count.
	ErrLengthMismatch = errors.New("mapping: table length does not match led count")
	// ErrCellOutOfBounds indicates a table entry outside the design grid.
	ErrCellOutOfBounds = errors.New("mapping: cell outside grid bounds")
	// ErrUnsupported indicates a geometry variant with no table generator.
	ErrUnsupported = errors.New("mapping: unsupported geometry for table generation")
)

// GridTooSmallError reports that a projected shape needs a larger design
// grid than the caller configured. Recoverable: resize the grid or fall
// back to a rectangular layout.
type GridTooSmallError struct {
	RequiredW int
	RequiredH int
}

func (e *GridTooSmallError) Error() string {
	return fmt.Sprintf("mapping: grid too small, need at least %dx%d", e.RequiredW, e.RequiredH)
}

// Cell is one design-grid coordinate.
type Cell struct {
	X uint16
	Y uint16
}

// Table maps physical LED index → the design-grid cell that LED shows.
type Table []Cell

// Clone returns an independent copy.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// Inverse builds the reverse lookup, grid cell → LED chain indices. More
// than one index per cell only happens in contrived custom layouts; the
// validator surfaces those as warnings.
func (t Table) Inverse() map[Cell][]int {
	inv := make(map[Cell][]int, len(t))
	for i, c := range t {
		inv[c] = append(inv[c], i)
	}
	return inv
}
