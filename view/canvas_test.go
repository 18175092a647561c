package view

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_SetPixelIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(8, 8)

	// Must not panic.
	c.SetPixel(-1, 0, colorFG)
	c.SetPixel(0, -1, colorFG)
	c.SetPixel(8, 0, colorFG)
	c.SetPixel(0, 8, colorFG)

	c.SetPixel(3, 4, colorFG)
	assert.Equal(t, colorFG, c.Image().RGBAAt(3, 4))
}

func TestCanvas_LineDrawsEndpoints(t *testing.T) {
	c := NewCanvas(16, 16)
	c.Line(2, 3, 12, 9, colorFG)

	assert.Equal(t, colorFG, c.Image().RGBAAt(2, 3))
	assert.Equal(t, colorFG, c.Image().RGBAAt(12, 9))
}

func TestCanvas_LineClipsOffCanvas(t *testing.T) {
	c := NewCanvas(8, 8)

	// Pixels outside the canvas are dropped without panicking.
	c.Line(-4, -4, 12, 12, colorFG)
	assert.Equal(t, colorFG, c.Image().RGBAAt(0, 0))
	assert.Equal(t, colorFG, c.Image().RGBAAt(7, 7))
}

func TestCanvas_FillRectClipped(t *testing.T) {
	c := NewCanvas(8, 8)
	c.FillRect(6, 6, 10, 10, colorFG)

	assert.Equal(t, colorFG, c.Image().RGBAAt(7, 7))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(5, 5))
}

func TestCanvas_FillCoversEverything(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Fill(colorPanel)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, colorPanel, c.Image().RGBAAt(x, y))
		}
	}
}

func TestCanvas_TextMarksPixels(t *testing.T) {
	c := NewCanvas(64, 32)
	c.Text(4, 20, "R", colorFG)

	marked := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if c.Image().RGBAAt(x, y) == colorFG {
				marked++
			}
		}
	}
	assert.Greater(t, marked, 0)
	assert.Greater(t, c.TextWidth("RGB"), c.TextWidth("R"))
}
