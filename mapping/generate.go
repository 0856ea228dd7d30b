package mapping

import (
	"fmt"
	"math"

	"github.com/coreman2200/ledmapper/geometry"
)

// Generate computes the mapping table for g projected into a width×height
// design grid. Deterministic: identical inputs always yield identical
// tables. Rectangular geometry has no table; use the wiring package.
func Generate(g geometry.Model, width, height int) (Table, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	switch v := g.(type) {
	case geometry.Rectangular:
		return nil, fmt.Errorf("%w: %s is wired, not mapped", ErrUnsupported, v.Kind())
	case geometry.Circle:
		if err := checkFit(v.Radius, width, height); err != nil {
			return nil, err
		}
		return ringTable(nil, v.LEDs, v.Radius, v.StartAngle, 360, true, width, height), nil
	case geometry.Ring:
		if err := checkFit(v.MeanRadius(), width, height); err != nil {
			return nil, err
		}
		return ringTable(nil, v.LEDs, v.MeanRadius(), v.StartAngle, 360, true, width, height), nil
	case geometry.Arc:
		if err := checkFit(v.Radius, width, height); err != nil {
			return nil, err
		}
		// A full-turn arc wraps like a circle; its endpoints must not
		// land on the same LED twice.
		return ringTable(nil, v.LEDs, v.Radius, v.StartAngle, v.Span(), v.Span() == 360, width, height), nil
	case geometry.MultiRing:
		if err := checkFit(v.MaxRadius(), width, height); err != nil {
			return nil, err
		}
		t := make(Table, 0, v.LEDCount())
		for i, r := range v.Rings {
			t = ringTable(t, r.LEDs, v.RingRadius(i), v.StartAngle, 360, true, width, height)
		}
		return t, nil
	case geometry.RadialRays:
		return raysTable(v, width, height)
	case geometry.Custom:
		return customTable(v, width, height)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, g.Kind())
	}
}

// checkFit verifies a shape of the given radius fits the grid at unit
// resolution when centered.
func checkFit(radius float64, width, height int) error {
	need := 2*int(math.Ceil(radius)) + 1
	if width < need || height < need {
		return &GridTooSmallError{RequiredW: need, RequiredH: need}
	}
	return nil
}

func center(width, height int) (float64, float64) {
	return float64(width-1) / 2, float64(height-1) / 2
}

// ringTable appends n LEDs spread across the angular span starting at
// startAngle. Wrapping spans step by span/n so the first and last LED do
// not coincide; open arcs include both endpoints and step by span/(n-1).
func ringTable(t Table, n int, radius, startAngle, span float64, wrap bool, width, height int) Table {
	cx, cy := center(width, height)
	step := 0.0
	if wrap {
		step = span / float64(n)
	} else if n > 1 {
		step = span / float64(n-1)
	}
	for k := 0; k < n; k++ {
		x, y := geometry.PointOnCircle(cx, cy, radius, startAngle+float64(k)*step)
		t = append(t, Cell{X: uint16(math.Round(x)), Y: uint16(math.Round(y))})
	}
	return t
}

func raysTable(v geometry.RadialRays, width, height int) (Table, error) {
	reach := float64(v.LEDsPerRay) * v.Pitch()
	if err := checkFit(reach, width, height); err != nil {
		return nil, err
	}
	cx, cy := center(width, height)
	t := make(Table, 0, v.LEDCount())
	for ray := 0; ray < v.Rays; ray++ {
		angle := v.StartAngle + float64(ray)*v.RaySpacing()
		for j := 0; j < v.LEDsPerRay; j++ {
			x, y := geometry.PointOnCircle(cx, cy, float64(j+1)*v.Pitch(), angle)
			t = append(t, Cell{X: uint16(math.Round(x)), Y: uint16(math.Round(y))})
		}
	}
	return t, nil
}

func customTable(v geometry.Custom, width, height int) (Table, error) {
	t := make(Table, 0, len(v.Positions))
	maxX, maxY := 0, 0
	for _, p := range v.Positions {
		x, y := p.X, p.Y
		if v.Unit == geometry.UnitPhysical {
			x /= v.Pitch
			y /= v.Pitch
		}
		xi, yi := int(math.Round(x)), int(math.Round(y))
		if xi < 0 || yi < 0 {
			return nil, fmt.Errorf("%w: position (%g,%g)", ErrCellOutOfBounds, p.X, p.Y)
		}
		if xi > maxX {
			maxX = xi
		}
		if yi > maxY {
			maxY = yi
		}
		t = append(t, Cell{X: uint16(xi), Y: uint16(yi)})
	}
	if maxX >= width || maxY >= height {
		return nil, &GridTooSmallError{RequiredW: maxX + 1, RequiredH: maxY + 1}
	}
	return t, nil
}
