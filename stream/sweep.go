package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/cmapviz/cmap"
	"github.com/matt-g-everett/cmapviz/util"
)

// A Sweep is an Animation that marches a single colour through the
// colour map parameter, pulsing its brightness with an eased gain so
// the strip breathes through the palette.
type Sweep struct {
	numPixels int
	periodMs  int64
	lut       []float64
}

// NewSweep creates an instance of a Sweep object.
func NewSweep(numPixels int, periodMs int64) *Sweep {
	s := new(Sweep)
	s.numPixels = numPixels
	s.periodMs = periodMs
	s.lut = util.PulseLut(120)

	return s
}

// CalculateFrame creates a new Frame instance.
func (s *Sweep) CalculateFrame(runtimeMs int64) *Frame {
	phase := float64(runtimeMs%s.periodMs) / float64(s.periodMs)
	gain := s.lut[int(phase*float64(len(s.lut)))%len(s.lut)]

	// Scale brightness in linear light, then come back to sRGB.
	lr, lg, lb := cmap.LinearColor(phase)
	c := colorful.LinearRgb(lr*gain, lg*gain, lb*gain).Clamped()

	f := NewFrame(s.numPixels)
	for i := 0; i < s.numPixels; i++ {
		f.SetPixel(i, c)
	}

	return f
}
