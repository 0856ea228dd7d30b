package model_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/coreman2200/ledmapper/model"
)

func TestNewFrame(t *testing.T) {
	f, err := NewFrame(12, 6)
	require.NoError(t, err)
	assert.Equal(t, 72, f.Len())
	for _, p := range f.Pix {
		assert.Equal(t, RGB{}, p)
	}

	_, err = NewFrame(0, 6)
	assert.ErrorIs(t, err, ErrFrameDims)
	_, err = NewFrame(6, -1)
	assert.ErrorIs(t, err, ErrFrameDims)
}

func TestSetAt(t *testing.T) {
	f, _ := NewFrame(4, 3)
	f.Set(2, 1, NewRGB(10, 20, 30))
	assert.Equal(t, NewRGB(10, 20, 30), f.At(2, 1))
	assert.Equal(t, NewRGB(10, 20, 30), f.Pix[6])
}

func TestCloneIndependence(t *testing.T) {
	f, _ := NewFrame(2, 2)
	f.Fill(NewRGB(1, 1, 1))
	c := f.Clone()
	c.Set(0, 0, NewRGB(9, 9, 9))
	assert.Equal(t, NewRGB(1, 1, 1), f.At(0, 0))
}

func TestFrameIO(t *testing.T) {
	f, _ := NewFrame(3, 2)
	for i := range f.Pix {
		f.Pix[i] = NewRGB(uint8(i), uint8(i*2), uint8(i*3))
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, f))
	assert.Equal(t, 18, buf.Len())

	back, err := ReadFrame(&buf, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, f.Pix, back.Pix)
}

func TestReadFrameShort(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader([]byte{1, 2, 3}), 3, 2)
	assert.ErrorIs(t, err, ErrFrameShort)
}

func TestImages(t *testing.T) {
	f, _ := NewFrame(3, 2)
	f.Set(1, 1, NewRGB(255, 0, 0))

	im := f.Image()
	assert.Equal(t, 3, im.Rect.Max.X)
	assert.Equal(t, 2, im.Rect.Max.Y)
	r, _, _, _ := im.At(1, 1).RGBA()
	assert.EqualValues(t, 0xFFFF, r)

	strip := f.StripImage()
	assert.Equal(t, 6, strip.Rect.Max.X)
	assert.Equal(t, 1, strip.Rect.Max.Y)
	r, _, _, _ = strip.At(4, 0).RGBA()
	assert.EqualValues(t, 0xFFFF, r)
}

func TestSerializeFrame(t *testing.T) {
	f, _ := NewFrame(2, 1)
	f.Set(0, 0, NewRGB(1, 2, 3))
	f.Set(1, 0, NewRGB(4, 5, 6))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, f.Serialize("RGB"))
	assert.Equal(t, []byte{2, 1, 3, 5, 4, 6}, f.Serialize("GRB"))
}
