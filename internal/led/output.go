// Package led pushes hardware-order frames out to an NRZ LED chain over
// SPI, falling back to console rendering when no SPI port is present.
package led

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/coreman2200/ledmapper/model"
)

const RefreshRate physic.Frequency = 800

// Output writes frames to a display.Drawer. Frames must already be in the
// device's hardware order; ordering is the pipeline's job, not this
// package's.
type Output struct {
	drawer display.Drawer
	Spi    bool
}

// Open initializes the host, opens the named SPI port (empty for the first
// available) and prepares an NRZ driver for count pixels. Without SPI it
// degrades to console output.
func Open(port string, count int) (*Output, error) {
	if count <= 0 {
		return nil, fmt.Errorf("led: invalid pixel count %d", count)
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("led: host init: %w", err)
	}
	p, err := spireg.Open(port)
	if err != nil {
		return &Output{drawer: screen.New(count), Spi: false}, nil
	}
	return NewSPIOutput(p, count)
}

// NewSPIOutput wraps an already-open SPI port. Split out from Open so tests
// can substitute a playback port.
func NewSPIOutput(p spi.Port, count int) (*Output, error) {
	opts := nrzled.Opts{
		NumPixels: count,
		Channels:  3,
		Freq:      ((RefreshRate * 3) + 100) * physic.KiloHertz,
	}
	d, err := nrzled.NewSPI(p, &opts)
	if err != nil {
		return nil, fmt.Errorf("led: nrz driver: %w", err)
	}
	if err := d.Halt(); err != nil {
		return nil, fmt.Errorf("led: halt: %w", err)
	}
	return &Output{drawer: d, Spi: true}, nil
}

// Push draws one hardware-order frame.
func (o *Output) Push(f *model.Frame) error {
	return o.drawer.Draw(o.drawer.Bounds(), f.StripImage(), image.Point{})
}

// Clear blanks the chain.
func (o *Output) Clear() error {
	return o.drawer.Halt()
}
