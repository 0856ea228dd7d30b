// Package wiring converts between canonical design order (row-major, origin
// top-left) and the physical order implied by how a rectangular matrix is
// daisy-chained: four traversal modes, each startable from any of the four
// corners. Every combination is a total bijection on [0, width*height).
//
// Index arguments outside that range are programmer errors and panic;
// malformed geometry never reaches this package.
package wiring

import (
	"errors"
	"fmt"
)

// Mode is the chain traversal pattern across the grid.
type Mode uint8

const (
	RowMajor Mode = iota
	Serpentine
	ColumnMajor
	ColumnSerpentine
)

// Corner is where the chain's first LED sits.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// ErrUnknownName indicates an unrecognized mode or corner name.
var ErrUnknownName = errors.New("wiring: unknown name")

var modeNames = map[Mode]string{
	RowMajor:         "row_major",
	Serpentine:       "serpentine",
	ColumnMajor:      "column_major",
	ColumnSerpentine: "column_serpentine",
}

var cornerNames = map[Corner]string{
	TopLeft:     "top_left",
	TopRight:    "top_right",
	BottomLeft:  "bottom_left",
	BottomRight: "bottom_right",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

func (c Corner) String() string {
	if s, ok := cornerNames[c]; ok {
		return s
	}
	return fmt.Sprintf("corner(%d)", uint8(c))
}

// ParseMode resolves a persisted mode name.
func ParseMode(s string) (Mode, error) {
	for m, n := range modeNames {
		if n == s {
			return m, nil
		}
	}
	return RowMajor, fmt.Errorf("%w: mode %q", ErrUnknownName, s)
}

// ParseCorner resolves a persisted corner name.
func ParseCorner(s string) (Corner, error) {
	for c, n := range cornerNames {
		if n == s {
			return c, nil
		}
	}
	return TopLeft, fmt.Errorf("%w: corner %q", ErrUnknownName, s)
}

// Descriptor pairs a traversal mode with its start corner. The zero value
// is row-major from the top-left, i.e. design order itself.
type Descriptor struct {
	Mode   Mode
	Corner Corner
}

func (d Descriptor) String() string {
	return d.Mode.String() + "/" + d.Corner.String()
}

func checkIndex(i, width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("wiring: invalid grid %dx%d", width, height))
	}
	if i < 0 || i >= width*height {
		panic(fmt.Sprintf("wiring: index %d out of range for %dx%d", i, width, height))
	}
}

// reflect maps a design-grid cell into the traversal frame whose origin is
// the start corner. It is its own inverse.
func reflect(col, row, width, height int, corner Corner) (int, int) {
	if corner == TopRight || corner == BottomRight {
		col = width - 1 - col
	}
	if corner == BottomLeft || corner == BottomRight {
		row = height - 1 - row
	}
	return col, row
}

// DesignToHardware returns the position in the LED chain of the design-order
// pixel at flat index i.
func DesignToHardware(i, width, height int, d Descriptor) int {
	checkIndex(i, width, height)
	col, row := i%width, i/width
	col, row = reflect(col, row, width, height, d.Corner)

	switch d.Mode {
	case RowMajor:
		return row*width + col
	case Serpentine:
		if row%2 == 1 {
			col = width - 1 - col
		}
		return row*width + col
	case ColumnMajor:
		return col*height + row
	case ColumnSerpentine:
		if col%2 == 1 {
			row = height - 1 - row
		}
		return col*height + row
	default:
		panic(fmt.Sprintf("wiring: unknown mode %d", d.Mode))
	}
}

// HardwareToDesign is the exact inverse of DesignToHardware.
func HardwareToDesign(i, width, height int, d Descriptor) int {
	checkIndex(i, width, height)

	var col, row int
	switch d.Mode {
	case RowMajor:
		col, row = i%width, i/width
	case Serpentine:
		col, row = i%width, i/width
		if row%2 == 1 {
			col = width - 1 - col
		}
	case ColumnMajor:
		row, col = i%height, i/height
	case ColumnSerpentine:
		row, col = i%height, i/height
		if col%2 == 1 {
			row = height - 1 - row
		}
	default:
		panic(fmt.Sprintf("wiring: unknown mode %d", d.Mode))
	}

	col, row = reflect(col, row, width, height, d.Corner)
	return row*width + col
}
