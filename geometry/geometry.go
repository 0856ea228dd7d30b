// Package geometry describes physical LED layouts: plain rectangular grids
// plus the parametric non-rectangular shapes (circles, rings, arcs, ray
// bursts) and free-form custom position lists.
//
// Angles are degrees, 0° pointing up (12 o'clock), increasing clockwise,
// matching how ring hardware is usually labelled. A model is immutable once
// built; Validate reports parameter problems as sentinel errors so callers
// can pick a fallback policy instead of catching panics.
package geometry

import (
	"fmt"
	"math"
)

// Kind tags the concrete layout variant.
type Kind string

const (
	KindRectangular Kind = "rectangular"
	KindCircle      Kind = "circle"
	KindRing        Kind = "ring"
	KindArc         Kind = "arc"
	KindMultiRing   Kind = "multiring"
	KindRadialRays  Kind = "rays"
	KindCustom      Kind = "custom"
)

// Unit selects how custom positions are expressed.
type Unit string

const (
	// UnitGrid means positions are design-grid cell coordinates.
	UnitGrid Unit = "grid"
	// UnitPhysical means positions are physical distances, divided by
	// Pitch to land on grid cells.
	UnitPhysical Unit = "physical"
)

// Model is the closed set of layout descriptions. LEDCount is the single
// source of truth for how many physical LEDs exist; it is independent of
// (and usually smaller than) the design grid's cell count.
type Model interface {
	Kind() Kind
	LEDCount() int
	Validate() error
}

// Rectangular is a plain grid; wiring order is applied separately by the
// wiring package.
type Rectangular struct {
	Width  int
	Height int
}

func (r Rectangular) Kind() Kind    { return KindRectangular }
func (r Rectangular) LEDCount() int { return r.Width * r.Height }

func (r Rectangular) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDims, r.Width, r.Height)
	}
	return nil
}

// Circle is a full ring of LEDs at a single radius. StartAngle rotates the
// first LED; the span is always the full 360°.
type Circle struct {
	Radius     float64
	StartAngle float64
	LEDs       int
}

func (c Circle) Kind() Kind    { return KindCircle }
func (c Circle) LEDCount() int { return c.LEDs }

func (c Circle) Validate() error {
	if c.LEDs < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.LEDs)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidRadius, c.Radius)
	}
	return nil
}

// Ring is an annulus; LEDs sit at the mean of the outer and inner radius.
type Ring struct {
	OuterRadius float64
	InnerRadius float64
	StartAngle  float64
	LEDs        int
}

func (r Ring) Kind() Kind    { return KindRing }
func (r Ring) LEDCount() int { return r.LEDs }

func (r Ring) Validate() error {
	if r.LEDs < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, r.LEDs)
	}
	if r.OuterRadius <= 0 || r.InnerRadius < 0 {
		return fmt.Errorf("%w: outer %g inner %g", ErrInvalidRadius, r.OuterRadius, r.InnerRadius)
	}
	if r.InnerRadius >= r.OuterRadius {
		return fmt.Errorf("%w: inner %g must be below outer %g", ErrInvalidRadius, r.InnerRadius, r.OuterRadius)
	}
	return nil
}

// MeanRadius is where the LEDs actually sit.
func (r Ring) MeanRadius() float64 {
	return (r.OuterRadius + r.InnerRadius) / 2
}

// Arc is a partial circle from StartAngle to EndAngle, endpoints included.
// Angles that differ by a full turn (0° to 360°) sweep the whole circle;
// exactly equal angles are the explicit zero-span case, only meaningful
// with a single LED.
type Arc struct {
	Radius     float64
	StartAngle float64
	EndAngle   float64
	LEDs       int
}

func (a Arc) Kind() Kind    { return KindArc }
func (a Arc) LEDCount() int { return a.LEDs }

func (a Arc) Validate() error {
	if a.LEDs < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, a.LEDs)
	}
	if a.Radius <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidRadius, a.Radius)
	}
	if a.Span() == 0 && a.LEDs != 1 {
		return fmt.Errorf("%w: %d leds at %g°", ErrDegenerateArc, a.LEDs, a.StartAngle)
	}
	return nil
}

// Span is the swept angle in (0,360], or 0 for a degenerate single-point
// arc. Distinct angles that coincide modulo 360° sweep the full circle.
func (a Arc) Span() float64 {
	if a.StartAngle == a.EndAngle {
		return 0
	}
	s := math.Mod(a.EndAngle-a.StartAngle, 360)
	if s < 0 {
		s += 360
	}
	if s == 0 {
		return 360
	}
	return s
}

// RingSpec is one ring of a MultiRing, innermost first.
type RingSpec struct {
	LEDs   int
	Radius float64
}

// MultiRing concatenates up to five concentric rings, innermost first.
// When a ring's Radius is zero it is derived as (index+1)×RingSpacing.
type MultiRing struct {
	Rings       []RingSpec
	RingSpacing float64
	StartAngle  float64
}

func (m MultiRing) Kind() Kind { return KindMultiRing }

func (m MultiRing) LEDCount() int {
	n := 0
	for _, r := range m.Rings {
		n += r.LEDs
	}
	return n
}

func (m MultiRing) Validate() error {
	if len(m.Rings) < 1 || len(m.Rings) > 5 {
		return fmt.Errorf("%w: %d", ErrRingCount, len(m.Rings))
	}
	needSpacing := false
	for i, r := range m.Rings {
		if r.LEDs < 1 {
			return fmt.Errorf("%w: ring %d has %d", ErrInvalidCount, i, r.LEDs)
		}
		if r.Radius < 0 {
			return fmt.Errorf("%w: ring %d radius %g", ErrInvalidRadius, i, r.Radius)
		}
		if r.Radius == 0 {
			needSpacing = true
		}
	}
	if needSpacing && m.RingSpacing <= 0 {
		return fmt.Errorf("%w: ring_spacing %g", ErrInvalidSpacing, m.RingSpacing)
	}
	return nil
}

// RingRadius resolves ring i's radius, deriving from RingSpacing when the
// spec leaves it implicit.
func (m MultiRing) RingRadius(i int) float64 {
	if m.Rings[i].Radius > 0 {
		return m.Rings[i].Radius
	}
	return float64(i+1) * m.RingSpacing
}

// MaxRadius is the outermost resolved ring radius.
func (m MultiRing) MaxRadius() float64 {
	max := 0.0
	for i := range m.Rings {
		if r := m.RingRadius(i); r > max {
			max = r
		}
	}
	return max
}

// RadialRays places LEDs along evenly rotated rays from the center outward.
// SpacingAngle defaults to 360/Rays when zero; LEDSpacing is the radial
// pitch in grid cells and defaults to 1.
type RadialRays struct {
	Rays         int
	LEDsPerRay   int
	SpacingAngle float64
	LEDSpacing   float64
	StartAngle   float64
}

func (r RadialRays) Kind() Kind    { return KindRadialRays }
func (r RadialRays) LEDCount() int { return r.Rays * r.LEDsPerRay }

func (r RadialRays) Validate() error {
	if r.Rays < 1 || r.LEDsPerRay < 1 {
		return fmt.Errorf("%w: %d rays x %d leds", ErrInvalidCount, r.Rays, r.LEDsPerRay)
	}
	if r.SpacingAngle < 0 {
		return fmt.Errorf("%w: spacing angle %g", ErrInvalidSpacing, r.SpacingAngle)
	}
	if r.LEDSpacing < 0 {
		return fmt.Errorf("%w: led spacing %g", ErrInvalidSpacing, r.LEDSpacing)
	}
	return nil
}

// RaySpacing resolves the angle between adjacent rays.
func (r RadialRays) RaySpacing() float64 {
	if r.SpacingAngle > 0 {
		return r.SpacingAngle
	}
	return 360.0 / float64(r.Rays)
}

// Pitch resolves the radial distance between adjacent LEDs on a ray.
func (r RadialRays) Pitch() float64 {
	if r.LEDSpacing > 0 {
		return r.LEDSpacing
	}
	return 1.0
}

// Position is one custom LED location.
type Position struct {
	X float64
	Y float64
}

// Custom is the escape hatch for layouts no parametric generator covers:
// the caller supplies every LED position directly, in LED chain order.
// Physical-unit positions are divided by Pitch to land on grid cells.
type Custom struct {
	Positions []Position
	Unit      Unit
	Pitch     float64
}

func (c Custom) Kind() Kind    { return KindCustom }
func (c Custom) LEDCount() int { return len(c.Positions) }

func (c Custom) Validate() error {
	if len(c.Positions) == 0 {
		return ErrNoPositions
	}
	if c.Unit == UnitPhysical && c.Pitch <= 0 {
		return fmt.Errorf("%w: pitch %g", ErrInvalidSpacing, c.Pitch)
	}
	return nil
}

// PointOnCircle projects an angular position at the given radius onto a
// grid centered at (cx,cy). Shared by every circular generator.
func PointOnCircle(cx, cy, radius, angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180.0
	return cx + radius*math.Sin(rad), cy - radius*math.Cos(rad)
}
