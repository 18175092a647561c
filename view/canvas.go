// Package view shows the colour map in an interactive window: a 3D
// trajectory of the curve, the 1D channel plots, and a live Mandelbrot
// preview, all drawn in software onto one RGBA canvas that is blitted
// to the screen each frame.
package view

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	colorBG    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorPanel = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xFF}
	colorFG    = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim   = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorGrid  = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorAxis  = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorRed   = color.RGBA{R: 0xFF, G: 0x46, B: 0x46, A: 0xFF}
	colorGreen = color.RGBA{R: 0x46, G: 0xFF, B: 0x46, A: 0xFF}
	colorBlue  = color.RGBA{R: 0x5A, G: 0x5A, B: 0xFF, A: 0xFF}
)

// A Canvas is the software raster every figure draws onto.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a Canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	c := new(Canvas)
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	return c
}

// Size reports the canvas dimensions.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the backing raster.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.RGBA) {
	w, h := c.Size()
	c.FillRect(0, 0, w, h, col)
}

// SetPixel sets one pixel, ignoring coordinates off the canvas.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// FillRect fills a rectangle, clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// Line draws with Bresenham's algorithm. Pixels off the canvas are
// dropped individually.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Blit copies src onto the canvas with its top-left corner at (x, y).
func (c *Canvas) Blit(x, y int, src image.Image) {
	sb := src.Bounds()
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy()).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, src, sb.Min, draw.Src)
}

// Text draws s with the 7x13 basic font; y is the baseline.
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// TextWidth reports the advance of s in pixels.
func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
