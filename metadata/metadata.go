// Package metadata persists pattern metadata: design grid size, wiring for
// rectangular layouts, layout shape parameters, and the cached mapping
// table. Patterns written before non-rectangular layouts existed carry no
// layout_type; those load as rectangular, never as an error.
package metadata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/ledmapper/geometry"
	"github.com/coreman2200/ledmapper/mapping"
	"github.com/coreman2200/ledmapper/wiring"
)

// RingMeta is one ring of a multiring layout, innermost first.
type RingMeta struct {
	LEDs   int     `yaml:"leds"`
	Radius float64 `yaml:"radius,omitempty"`
}

// PositionMeta is one custom LED position.
type PositionMeta struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Pattern is the on-disk metadata record. Shape parameters are flat
// optional fields; which ones apply depends on LayoutType.
type Pattern struct {
	Name   string `yaml:"name,omitempty"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	WiringMode  string `yaml:"wiring_mode,omitempty"`
	StartCorner string `yaml:"start_corner,omitempty"`

	LayoutType string `yaml:"layout_type,omitempty"`

	Radius      float64 `yaml:"radius,omitempty"`
	OuterRadius float64 `yaml:"outer_radius,omitempty"`
	InnerRadius float64 `yaml:"inner_radius,omitempty"`
	StartAngle  float64 `yaml:"start_angle,omitempty"`
	EndAngle    float64 `yaml:"end_angle,omitempty"`
	LEDCount    int     `yaml:"led_count,omitempty"`

	Rings       []RingMeta `yaml:"rings,omitempty"`
	RingSpacing float64    `yaml:"ring_spacing,omitempty"`

	RayCount     int     `yaml:"ray_count,omitempty"`
	LEDsPerRay   int     `yaml:"leds_per_ray,omitempty"`
	SpacingAngle float64 `yaml:"ray_spacing_angle,omitempty"`
	LEDSpacing   float64 `yaml:"led_spacing,omitempty"`

	Positions    []PositionMeta `yaml:"positions,omitempty"`
	PositionUnit string         `yaml:"position_unit,omitempty"`
	Pitch        float64        `yaml:"pitch,omitempty"`

	MappingTable [][2]uint16 `yaml:"mapping_table,omitempty"`
}

// Load reads a pattern metadata file.
func Load(path string) (*Pattern, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Pattern
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes a pattern metadata file.
func Save(path string, p *Pattern) error {
	b, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Geometry resolves the pattern's layout. An absent or unrecognized
// layout_type means a plain rectangular grid; that is the backward
// compatibility contract for old pattern files.
func (p *Pattern) Geometry() geometry.Model {
	switch geometry.Kind(p.LayoutType) {
	case geometry.KindCircle:
		return geometry.Circle{Radius: p.circleRadius(), StartAngle: p.StartAngle, LEDs: p.LEDCount}
	case geometry.KindRing:
		return geometry.Ring{
			OuterRadius: p.OuterRadius,
			InnerRadius: p.InnerRadius,
			StartAngle:  p.StartAngle,
			LEDs:        p.LEDCount,
		}
	case geometry.KindArc:
		// start == end is how old files spell a full circle.
		if p.StartAngle == p.EndAngle {
			return geometry.Circle{Radius: p.circleRadius(), StartAngle: p.StartAngle, LEDs: p.LEDCount}
		}
		return geometry.Arc{
			Radius:     p.circleRadius(),
			StartAngle: p.StartAngle,
			EndAngle:   p.EndAngle,
			LEDs:       p.LEDCount,
		}
	case geometry.KindMultiRing:
		rings := make([]geometry.RingSpec, len(p.Rings))
		for i, r := range p.Rings {
			rings[i] = geometry.RingSpec{LEDs: r.LEDs, Radius: r.Radius}
		}
		return geometry.MultiRing{Rings: rings, RingSpacing: p.RingSpacing, StartAngle: p.StartAngle}
	case geometry.KindRadialRays:
		return geometry.RadialRays{
			Rays:         p.RayCount,
			LEDsPerRay:   p.LEDsPerRay,
			SpacingAngle: p.SpacingAngle,
			LEDSpacing:   p.LEDSpacing,
			StartAngle:   p.StartAngle,
		}
	case geometry.KindCustom:
		pos := make([]geometry.Position, len(p.Positions))
		for i, pp := range p.Positions {
			pos[i] = geometry.Position{X: pp.X, Y: pp.Y}
		}
		unit := geometry.Unit(p.PositionUnit)
		if unit != geometry.UnitPhysical {
			unit = geometry.UnitGrid
		}
		return geometry.Custom{Positions: pos, Unit: unit, Pitch: p.Pitch}
	default:
		return geometry.Rectangular{Width: p.Width, Height: p.Height}
	}
}

func (p *Pattern) circleRadius() float64 {
	if p.Radius > 0 {
		return p.Radius
	}
	return p.OuterRadius
}

// Descriptor resolves the wiring descriptor, defaulting missing fields to
// row-major from the top-left.
func (p *Pattern) Descriptor() (wiring.Descriptor, error) {
	var d wiring.Descriptor
	if p.WiringMode != "" {
		m, err := wiring.ParseMode(p.WiringMode)
		if err != nil {
			return d, err
		}
		d.Mode = m
	}
	if p.StartCorner != "" {
		c, err := wiring.ParseCorner(p.StartCorner)
		if err != nil {
			return d, err
		}
		d.Corner = c
	}
	return d, nil
}

// SetDescriptor records the wiring descriptor.
func (p *Pattern) SetDescriptor(d wiring.Descriptor) {
	p.WiringMode = d.Mode.String()
	p.StartCorner = d.Corner.String()
}

// Table converts the persisted mapping_table, or nil when absent.
func (p *Pattern) Table() mapping.Table {
	if len(p.MappingTable) == 0 {
		return nil
	}
	t := make(mapping.Table, len(p.MappingTable))
	for i, e := range p.MappingTable {
		t[i] = mapping.Cell{X: e[0], Y: e[1]}
	}
	return t
}

// SetTable records a freshly generated mapping table.
func (p *Pattern) SetTable(t mapping.Table) {
	if t == nil {
		p.MappingTable = nil
		return
	}
	p.MappingTable = make([][2]uint16, len(t))
	for i, c := range t {
		p.MappingTable[i] = [2]uint16{c.X, c.Y}
	}
}

// Validate sanity-checks the fields the engine relies on.
func (p *Pattern) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", geometry.ErrInvalidDims, p.Width, p.Height)
	}
	if _, err := p.Descriptor(); err != nil {
		return err
	}
	return p.Geometry().Validate()
}
