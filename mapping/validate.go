package mapping

import (
	"fmt"

	"github.com/coreman2200/ledmapper/geometry"
)

// Result is the outcome of checking a table against its geometry. A nil
// Err means the table is structurally sound; Warnings carry soft findings
// (duplicate cells) that never force a regeneration.
type Result struct {
	Err      error
	Warnings []string
}

// Valid reports whether the table can be used as-is.
func (r Result) Valid() bool {
	return r.Err == nil
}

// Validate checks a table's internal consistency: length matches the
// geometry's LED count, every cell lies inside the width×height grid, and
// (soft) no two LEDs share a cell.
func Validate(t Table, g geometry.Model, width, height int) Result {
	if err := g.Validate(); err != nil {
		return Result{Err: err}
	}
	if len(t) != g.LEDCount() {
		return Result{Err: fmt.Errorf("%w: table has %d entries, geometry declares %d",
			ErrLengthMismatch, len(t), g.LEDCount())}
	}
	for i, c := range t {
		if int(c.X) >= width || int(c.Y) >= height {
			return Result{Err: fmt.Errorf("%w: led %d at (%d,%d) in %dx%d grid",
				ErrCellOutOfBounds, i, c.X, c.Y, width, height)}
		}
	}

	// Walk the table in LED order so repeated runs report duplicates
	// identically.
	inv := t.Inverse()
	var warnings []string
	seen := make(map[Cell]bool)
	for _, cell := range t {
		if seen[cell] {
			continue
		}
		seen[cell] = true
		if leds := inv[cell]; len(leds) > 1 {
			warnings = append(warnings, fmt.Sprintf("cell (%d,%d) shared by %d leds", cell.X, cell.Y, len(leds)))
		}
	}
	return Result{Warnings: warnings}
}

// Ensure returns t unchanged when it validates against g, and otherwise
// regenerates a fresh table from the geometry. A nil t always regenerates.
// A non-nil error means the geometry itself cannot produce a table and the
// caller should fall back to treating the layout as rectangular.
func Ensure(t Table, g geometry.Model, width, height int) (Table, error) {
	if t != nil && Validate(t, g, width, height).Valid() {
		return t, nil
	}
	return Generate(g, width, height)
}
