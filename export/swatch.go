package export

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/matt-g-everett/cmapviz/cmap"
	"github.com/matt-g-everett/cmapviz/view"
)

// Swatch writes a vertical gradient strip of the palette to a PNG file,
// with s = 1 at the top.
func Swatch(path string, palette *cmap.Palette, w, h int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := 1.0 - float64(y)/float64(max(h-1, 1))
		r, g, b := palette.Sample(t).Clamped().RGB255()
		row := image.Rect(0, y, w, y+1)
		draw.Draw(img, row, image.NewUniform(color.RGBA{R: r, G: g, B: b, A: 0xFF}), image.Point{}, draw.Src)
	}
	return writePNG(path, img)
}

// Trajectory writes a snapshot of the 3D trajectory view, rendered
// through the same projector as the window, to a PNG file.
func Trajectory(path string, samples, r, g, b []float64, w, h int) error {
	return writePNG(path, view.RenderTrajectory(samples, r, g, b, w, h))
}
