package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/coreman2200/ledmapper/model"
)

var TestPackedIsExpectedColor = []struct {
	R      uint8
	G      uint8
	B      uint8
	Expect uint32
}{
	{0x22, 0x11, 0x33, 0xFF221133},
	{0x44, 0x2A, 0x34, 0xFF442A34},
	{0x88, 0x3B, 0x35, 0xFF883B35},
	{0xAA, 0x4C, 0x36, 0xFFAA4C36},
	{0xCC, 0x5D, 0x37, 0xFFCC5D37},
}

func TestPacking(t *testing.T) {
	for _, v := range TestPackedIsExpectedColor {
		col := NewRGB(v.R, v.G, v.B)
		assert.Equal(t, v.Expect, col.Packed(), "should be same val")
		assert.Equal(t, col, FromPacked(v.Expect))
	}
}

func TestScale(t *testing.T) {
	c := NewRGB(200, 100, 50)
	assert.Equal(t, NewRGB(100, 50, 25), c.Scale(0.5))
	// Out-of-range factors leave the color alone.
	assert.Equal(t, c, c.Scale(1.5))
	assert.Equal(t, c, c.Scale(-0.1))
}

func TestSerializeOrder(t *testing.T) {
	c := NewRGB(1, 2, 3)
	assert.Equal(t, []byte{1, 2, 3}, c.Serialize("RGB"))
	assert.Equal(t, []byte{2, 1, 3}, c.Serialize("GRB"))
	assert.Equal(t, []byte{3, 2, 1}, c.Serialize("BGR"))
	assert.Equal(t, []byte{1, 2, 3}, c.Serialize("bogus"))
}

func TestToNRGBA(t *testing.T) {
	c := NewRGB(9, 8, 7).ToNRGBA()
	assert.EqualValues(t, 9, c.R)
	assert.EqualValues(t, 8, c.G)
	assert.EqualValues(t, 7, c.B)
	assert.EqualValues(t, 255, c.A)
}
