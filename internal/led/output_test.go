package led_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"periph.io/x/conn/v3/spi/spitest"

	"github.com/coreman2200/ledmapper/internal/led"
	"github.com/coreman2200/ledmapper/model"
)

func TestPushRecordsBytes(t *testing.T) {
	buf := bytes.Buffer{}
	out, err := led.NewSPIOutput(spitest.NewRecordRaw(&buf), 4)
	require.NoError(t, err)
	assert.True(t, out.Spi)

	f, err := model.NewStripFrame(4)
	require.NoError(t, err)
	f.Fill(model.NewRGB(255, 0, 0))

	require.NoError(t, out.Push(f))
	assert.NotZero(t, buf.Len(), "NRZ-encoded frame bytes must reach the port")
}

func TestPushThenClear(t *testing.T) {
	buf := bytes.Buffer{}
	out, err := led.NewSPIOutput(spitest.NewRecordRaw(&buf), 2)
	require.NoError(t, err)

	f, _ := model.NewStripFrame(2)
	require.NoError(t, out.Push(f))
	require.NoError(t, out.Clear())
}
