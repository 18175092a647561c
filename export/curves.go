package export

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Curves writes a line chart of the three channel sequences against
// sample index to a PNG file.
func Curves(path string, r, g, b []float64) error {
	p := plot.New()
	p.Title.Text = "Colour map channels"
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "channel value"
	p.Legend.Top = true

	series := []struct {
		name   string
		values []float64
		col    color.RGBA
	}{
		{"R", r, color.RGBA{R: 0xD0, G: 0x30, B: 0x30, A: 0xFF}},
		{"G", g, color.RGBA{R: 0x30, G: 0xA0, B: 0x30, A: 0xFF}},
		{"B", b, color.RGBA{R: 0x30, G: 0x30, B: 0xD0, A: 0xFF}},
	}
	for _, s := range series {
		pts := make(plotter.XYs, len(s.values))
		for i, v := range s.values {
			pts[i].X = float64(i)
			pts[i].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("export: %s line: %w", s.name, err)
		}
		line.Color = s.col
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	c := vgimg.NewWith(
		vgimg.UseWH(8*vg.Inch, 5*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}

	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
