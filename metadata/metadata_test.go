package metadata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/ledmapper/geometry"
	"github.com/coreman2200/ledmapper/mapping"
	"github.com/coreman2200/ledmapper/metadata"
	"github.com/coreman2200/ledmapper/wiring"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pattern.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// Old pattern files carry no layout_type; they load as rectangular with no
// mapping table, and wiring alone drives the export.
func TestLegacyPatternDefaultsRectangular(t *testing.T) {
	path := writeTemp(t, `
name: legacy
width: 12
height: 6
wiring_mode: serpentine
start_corner: top_left
`)
	p, err := metadata.Load(path)
	require.NoError(t, err)

	g := p.Geometry()
	assert.Equal(t, geometry.KindRectangular, g.Kind())
	assert.Equal(t, geometry.Rectangular{Width: 12, Height: 6}, g)
	assert.Nil(t, p.Table())

	d, err := p.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, wiring.Descriptor{Mode: wiring.Serpentine, Corner: wiring.TopLeft}, d)
	assert.NoError(t, p.Validate())
}

func TestUnknownLayoutTypeDefaultsRectangular(t *testing.T) {
	path := writeTemp(t, `
width: 8
height: 8
layout_type: dodecahedron
`)
	p, err := metadata.Load(path)
	require.NoError(t, err)
	assert.Equal(t, geometry.KindRectangular, p.Geometry().Kind())
}

func TestMissingWiringDefaults(t *testing.T) {
	path := writeTemp(t, "width: 4\nheight: 4\n")
	p, err := metadata.Load(path)
	require.NoError(t, err)
	d, err := p.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, wiring.Descriptor{}, d)
}

func TestCirclePattern(t *testing.T) {
	path := writeTemp(t, `
width: 10
height: 10
layout_type: circle
radius: 4
led_count: 8
`)
	p, err := metadata.Load(path)
	require.NoError(t, err)

	g := p.Geometry()
	require.Equal(t, geometry.KindCircle, g.Kind())
	assert.Equal(t, geometry.Circle{Radius: 4, LEDs: 8}, g)
	assert.NoError(t, p.Validate())
}

// An arc whose start and end coincide is the old spelling of a full circle.
func TestArcFullCircleSpelling(t *testing.T) {
	path := writeTemp(t, `
width: 10
height: 10
layout_type: arc
radius: 4
start_angle: 90
end_angle: 90
led_count: 8
`)
	p, err := metadata.Load(path)
	require.NoError(t, err)
	g := p.Geometry()
	assert.Equal(t, geometry.KindCircle, g.Kind())
	assert.Equal(t, geometry.Circle{Radius: 4, StartAngle: 90, LEDs: 8}, g)
}

// A pattern spelling a full circle as 0°→360° keeps its arc layout and
// still produces a full-circle table; it must not degrade to rectangular.
func TestArcZeroTo360Pattern(t *testing.T) {
	path := writeTemp(t, `
width: 10
height: 10
layout_type: arc
radius: 4
start_angle: 0
end_angle: 360
led_count: 8
`)
	p, err := metadata.Load(path)
	require.NoError(t, err)

	g := p.Geometry()
	require.Equal(t, geometry.KindArc, g.Kind())
	require.NoError(t, p.Validate())

	table, err := mapping.Ensure(nil, g, p.Width, p.Height)
	require.NoError(t, err)
	assert.Len(t, table, 8)

	circle, err := mapping.Generate(geometry.Circle{Radius: 4, LEDs: 8}, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, circle, table)
}

func TestMultiRingPattern(t *testing.T) {
	path := writeTemp(t, `
width: 9
height: 9
layout_type: multiring
rings:
  - leds: 4
    radius: 1
  - leds: 8
    radius: 3
`)
	p, err := metadata.Load(path)
	require.NoError(t, err)
	g := p.Geometry()
	require.Equal(t, geometry.KindMultiRing, g.Kind())
	assert.Equal(t, 12, g.LEDCount())
}

func TestCustomPattern(t *testing.T) {
	path := writeTemp(t, `
width: 6
height: 6
layout_type: custom
position_unit: grid
positions:
  - {x: 0, y: 0}
  - {x: 5, y: 5}
`)
	p, err := metadata.Load(path)
	require.NoError(t, err)
	g := p.Geometry()
	require.Equal(t, geometry.KindCustom, g.Kind())
	assert.Equal(t, 2, g.LEDCount())
}

func TestTableRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pattern.yaml")

	p := &metadata.Pattern{
		Name:       "ring-12",
		Width:      10,
		Height:     10,
		LayoutType: string(geometry.KindCircle),
		Radius:     4,
		LEDCount:   8,
	}
	p.SetDescriptor(wiring.Descriptor{Mode: wiring.ColumnSerpentine, Corner: wiring.BottomLeft})

	table, err := mapping.Generate(p.Geometry(), p.Width, p.Height)
	require.NoError(t, err)
	p.SetTable(table)
	require.NoError(t, metadata.Save(path, p))

	back, err := metadata.Load(path)
	require.NoError(t, err)
	assert.Equal(t, table, back.Table())

	d, err := back.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, wiring.ColumnSerpentine, d.Mode)
	assert.Equal(t, wiring.BottomLeft, d.Corner)

	res := mapping.Validate(back.Table(), back.Geometry(), back.Width, back.Height)
	assert.True(t, res.Valid())
}

func TestValidateRejects(t *testing.T) {
	p := &metadata.Pattern{Width: 0, Height: 4}
	assert.ErrorIs(t, p.Validate(), geometry.ErrInvalidDims)

	p = &metadata.Pattern{Width: 4, Height: 4, WiringMode: "spiral"}
	assert.ErrorIs(t, p.Validate(), wiring.ErrUnknownName)

	p = &metadata.Pattern{Width: 10, Height: 10, LayoutType: "circle", Radius: -2, LEDCount: 8}
	assert.ErrorIs(t, p.Validate(), geometry.ErrInvalidRadius)
}

func TestSetTableNil(t *testing.T) {
	p := &metadata.Pattern{MappingTable: [][2]uint16{{1, 2}}}
	p.SetTable(nil)
	assert.Nil(t, p.Table())
}
