package stream

import (
	"math"

	"github.com/matt-g-everett/cmapviz/cmap"
)

// A Wash is an Animation that lays the whole palette along the strip
// and scrolls it.
type Wash struct {
	palette   *cmap.Palette
	numPixels int
	speed     float64 // pixels per second
}

// NewWash creates an instance of a Wash object.
func NewWash(palette *cmap.Palette, numPixels int, speed float64) *Wash {
	w := new(Wash)
	w.palette = palette
	w.numPixels = numPixels
	w.speed = speed

	return w
}

// CalculateFrame creates a new Frame instance.
func (w *Wash) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(w.numPixels)
	shift := w.speed * float64(runtimeMs) / 1000.0
	for i := 0; i < w.numPixels; i++ {
		t := math.Mod(float64(i)+shift, float64(w.numPixels)) / float64(w.numPixels)
		f.SetPixel(i, w.palette.Sample(t))
	}

	return f
}
