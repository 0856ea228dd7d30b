package model

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
)

var (
	// ErrFrameDims indicates non-positive frame dimensions.
	ErrFrameDims = errors.New("model: frame dimensions must be positive")
	// ErrFrameShort indicates a raw frame dump whose length is not 3×N.
	ErrFrameShort = errors.New("model: raw frame length must be a multiple of 3")
)

// Frame is one animation frame in a single flat pixel order.
// A design-order frame is Width×Height row-major with origin top-left;
// a hardware-order frame for a mapped layout is led_count×1.
// len(Pix) == Width*Height always holds.
type Frame struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewFrame allocates a zeroed (all-black) frame.
func NewFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFrameDims, width, height)
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}, nil
}

// NewStripFrame allocates a 1-row frame of n pixels, the shape of a
// hardware-order buffer for a non-rectangular layout.
func NewStripFrame(n int) (*Frame, error) {
	return NewFrame(n, 1)
}

func (f *Frame) Len() int {
	return len(f.Pix)
}

// At returns the pixel at (x,y). Callers must stay in bounds.
func (f *Frame) At(x, y int) RGB {
	return f.Pix[y*f.Width+x]
}

func (f *Frame) Set(x, y int, c RGB) {
	f.Pix[y*f.Width+x] = c
}

func (f *Frame) Fill(c RGB) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}

func (f *Frame) Clone() *Frame {
	pix := make([]RGB, len(f.Pix))
	copy(pix, f.Pix)
	return &Frame{Width: f.Width, Height: f.Height, Pix: pix}
}

// Image renders the frame as an NRGBA image, one pixel per LED.
func (f *Frame) Image() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			im.SetNRGBA(x, y, f.At(x, y).ToNRGBA())
		}
	}
	return im
}

// StripImage renders the frame as a 1×N strip in flat order, the shape
// the SPI drawer consumes.
func (f *Frame) StripImage() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, len(f.Pix), 1))
	for i, c := range f.Pix {
		im.SetNRGBA(i, 0, c.ToNRGBA())
	}
	return im
}

// Serialize returns the raw wire bytes, 3 per pixel, in the given channel order.
func (f *Frame) Serialize(order string) []byte {
	buf := new(bytes.Buffer)
	for _, c := range f.Pix {
		buf.Write(c.Serialize(order))
	}
	return buf.Bytes()
}

// ReadFrame decodes a raw 3-bytes-per-pixel dump into a width×height frame.
func ReadFrame(r io.Reader, width, height int) (*Frame, error) {
	f, err := NewFrame(width, height)
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw) != 3*len(f.Pix) {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrFrameShort, len(raw), 3*len(f.Pix))
	}
	for i := range f.Pix {
		f.Pix[i] = RGB{R: raw[3*i], G: raw[3*i+1], B: raw[3*i+2]}
	}
	return f, nil
}

// WriteFrame encodes f as a raw RGB dump.
func WriteFrame(w io.Writer, f *Frame) error {
	_, err := w.Write(f.Serialize("RGB"))
	return err
}
