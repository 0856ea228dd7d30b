package model

import (
	"image/color"
)

const (
	ALPHA_OFFSET uint8 = 0x18
	GREEN_OFFSET uint8 = 0x10
	RED_OFFSET   uint8 = 0x08
	BLUE_OFFSET  uint8 = 0x0
)

// RGB is one LED's color, one byte per channel.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// FromPacked unpacks a 0xAARRGGBB word into an RGB, discarding alpha.
func FromPacked(c uint32) RGB {
	return RGB{
		R: getchan(c, RED_OFFSET),
		G: getchan(c, GREEN_OFFSET),
		B: getchan(c, BLUE_OFFSET),
	}
}

// Packed returns the 0xAARRGGBB word for c with alpha forced to 0xFF.
func (c RGB) Packed() uint32 {
	var v uint32
	v = setchan(v, 0xFF, ALPHA_OFFSET)
	v = setchan(v, c.R, RED_OFFSET)
	v = setchan(v, c.G, GREEN_OFFSET)
	v = setchan(v, c.B, BLUE_OFFSET)
	return v
}

func (c RGB) ToNRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Scale multiplies every channel by s, clamped to [0,1].
func (c RGB) Scale(s float64) RGB {
	if s > 1.0 || s < 0.0 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * s),
		G: uint8(float64(c.G) * s),
		B: uint8(float64(c.B) * s),
	}
}

// Serialize returns the 3-byte wire form in the given channel order.
// order is a permutation of "RGB", e.g. "GRB" for WS2812 chains.
func (c RGB) Serialize(order string) []byte {
	if len(order) != 3 {
		order = "RGB"
	}
	buf := make([]byte, 3)
	for i := 0; i < 3; i++ {
		switch order[i] {
		case 'R':
			buf[i] = c.R
		case 'G':
			buf[i] = c.G
		case 'B':
			buf[i] = c.B
		}
	}
	return buf
}

func setchan(c uint32, n uint8, off uint8) uint32 {
	var val uint32 = uint32(n) << off
	var mask uint32 = 0xFF << off
	return (c & (^mask)) | val
}

func getchan(c uint32, off uint8) uint8 {
	var mask uint32 = 0xFF << off
	return uint8((c & mask) >> off)
}
