package cmap

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/cmapviz/util"
)

// DefaultPaletteSize is the entry count used when nothing more specific
// is asked for.
const DefaultPaletteSize = 256

// ErrBadPaletteSize is returned by BuildPalette for entry counts below one.
var ErrBadPaletteSize = errors.New("cmap: palette needs at least one entry")

// A Palette is the colour map quantized into a lookup table, sampled at
// the centre of each of n uniform buckets over [0, 1].
type Palette struct {
	colors []colorful.Color
}

// BuildPalette creates a Palette with n entries.
func BuildPalette(n int) (*Palette, error) {
	if n < 1 {
		return nil, ErrBadPaletteSize
	}

	p := new(Palette)
	p.colors = make([]colorful.Color, n)
	for i := range p.colors {
		s := (float64(i) + 0.5) / float64(n)
		p.colors[i] = Color(s)
	}
	return p, nil
}

// Len reports the number of entries.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Sample returns the entry whose bucket contains t. Values outside
// [0, 1] clamp to the first or last entry.
func (p *Palette) Sample(t float64) colorful.Color {
	t = util.Clamp01(t)
	i := int(t * float64(len(p.colors)))
	if i >= len(p.colors) {
		i = len(p.colors) - 1
	}
	return p.colors[i]
}

// RGBA returns entry i quantized to bytes.
func (p *Palette) RGBA(i int) (r, g, b uint8) {
	return p.colors[i].Clamped().RGB255()
}
