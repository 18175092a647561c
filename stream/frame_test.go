package stream_test

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/cmapviz/stream"
)

func TestFrame_MarshalBinaryLayout(t *testing.T) {
	f := stream.NewFrame(3)
	f.SetPixel(0, colorful.Color{R: 1, G: 0, B: 0})
	f.SetPixel(1, colorful.Color{R: 0, G: 1, B: 0})
	f.SetPixel(2, colorful.Color{R: 0, G: 0, B: 1})

	data, err := f.MarshalBinary()
	require.NoError(t, err)

	// Little-endian pixel count, then one RGB triplet per pixel.
	require.Len(t, data, 2+3*3)
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(data))
	assert.Equal(t, []byte{0xFF, 0x00, 0x00}, data[2:5])
	assert.Equal(t, []byte{0x00, 0xFF, 0x00}, data[5:8])
	assert.Equal(t, []byte{0x00, 0x00, 0xFF}, data[8:11])
}

func TestFrame_MarshalBinaryClampsChannels(t *testing.T) {
	f := stream.NewFrame(1)
	f.SetPixel(0, colorful.Color{R: 1.5, G: -0.5, B: 0.5})

	data, err := f.MarshalBinary()
	require.NoError(t, err)

	assert.Equal(t, uint8(0xFF), data[2], "overdriven channel clamps to full")
	assert.Equal(t, uint8(0x00), data[3], "negative channel clamps to zero")
}

func TestFrame_NewFrameIsBlack(t *testing.T) {
	f := stream.NewFrame(4)
	assert.Equal(t, 4, f.Len())
	for i := 0; i < f.Len(); i++ {
		assert.Equal(t, colorful.Color{}, f.Pixel(i))
	}
}
