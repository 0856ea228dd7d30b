// Package pipeline re-orders pixel frames between a file format's order, the
// canonical design order, and a device's hardware order. Every conversion
// routes through design order, so each layout kind implements one direction
// and import/export share a single code path.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/coreman2200/ledmapper/mapping"
	"github.com/coreman2200/ledmapper/model"
	"github.com/coreman2200/ledmapper/wiring"
)

var (
	// ErrFrameSize indicates a frame whose pixel count does not match its
	// declared order.
	ErrFrameSize = errors.New("pipeline: frame size does not match order spec")
	// ErrGridDims indicates a converter built on a non-positive design grid.
	ErrGridDims = errors.New("pipeline: grid dimensions must be positive")
)

type orderKind uint8

const (
	orderDesign orderKind = iota
	orderWired
	orderMapped
)

// OrderSpec names one flat pixel ordering: canonical design order, a
// rectangular wiring order, or a mapping-table order for a non-rectangular
// layout. Build one with Design, Wired, or Mapped.
type OrderSpec struct {
	kind  orderKind
	desc  wiring.Descriptor
	table mapping.Table
}

// Design is canonical design order: row-major, origin top-left.
func Design() OrderSpec {
	return OrderSpec{kind: orderDesign}
}

// Wired is the hardware order of a rectangular layout chained per d.
func Wired(d wiring.Descriptor) OrderSpec {
	return OrderSpec{kind: orderWired, desc: d}
}

// Mapped is the hardware order of a non-rectangular layout: LED i shows
// the design cell t[i]. The table is captured by reference and must not
// be mutated afterwards.
func Mapped(t mapping.Table) OrderSpec {
	return OrderSpec{kind: orderMapped, table: t}
}

// LEDCount returns the pixel count of a mapped order, or 0 for orders
// shaped like the full design grid.
func (s OrderSpec) LEDCount() int {
	if s.kind == orderMapped {
		return len(s.table)
	}
	return 0
}

func (s OrderSpec) String() string {
	switch s.kind {
	case orderWired:
		return "wired(" + s.desc.String() + ")"
	case orderMapped:
		return fmt.Sprintf("mapped(%d leds)", len(s.table))
	default:
		return "design"
	}
}

// Converter re-orders frames for one design grid. It is stateless beyond
// the grid dimensions and safe for concurrent use.
type Converter struct {
	Width  int
	Height int
}

func New(width, height int) (*Converter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridDims, width, height)
	}
	return &Converter{Width: width, Height: height}, nil
}

// frameLen is the pixel count a frame in the given order must have.
func (c *Converter) frameLen(s OrderSpec) int {
	if s.kind == orderMapped {
		return len(s.table)
	}
	return c.Width * c.Height
}

// Convert re-orders f from one ordering to another, routing through
// canonical design order. The input frame is never modified.
func (c *Converter) Convert(f *model.Frame, from, to OrderSpec) (*model.Frame, error) {
	if f.Len() != c.frameLen(from) {
		return nil, fmt.Errorf("%w: frame has %d pixels, %s wants %d",
			ErrFrameSize, f.Len(), from, c.frameLen(from))
	}
	design, err := c.toDesign(f, from)
	if err != nil {
		return nil, err
	}
	return c.fromDesign(design, to)
}

// toDesign lifts a frame out of its source order into design order. Design
// cells no LED covers stay black (inactive).
func (c *Converter) toDesign(f *model.Frame, from OrderSpec) (*model.Frame, error) {
	switch from.kind {
	case orderDesign:
		return f, nil
	case orderWired:
		out, err := model.NewFrame(c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		for i := range out.Pix {
			out.Pix[i] = f.Pix[wiring.DesignToHardware(i, c.Width, c.Height, from.desc)]
		}
		return out, nil
	case orderMapped:
		out, err := model.NewFrame(c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		for i, cell := range from.table {
			out.Set(int(cell.X), int(cell.Y), f.Pix[i])
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown source order", ErrFrameSize)
	}
}

// fromDesign projects a design-order frame into the target order.
func (c *Converter) fromDesign(f *model.Frame, to OrderSpec) (*model.Frame, error) {
	switch to.kind {
	case orderDesign:
		return f.Clone(), nil
	case orderWired:
		out, err := model.NewFrame(c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		for i := range f.Pix {
			out.Pix[wiring.DesignToHardware(i, c.Width, c.Height, to.desc)] = f.Pix[i]
		}
		return out, nil
	case orderMapped:
		out, err := model.NewStripFrame(len(to.table))
		if err != nil {
			return nil, err
		}
		for i, cell := range to.table {
			out.Pix[i] = f.At(int(cell.X), int(cell.Y))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown target order", ErrFrameSize)
	}
}
