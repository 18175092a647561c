package view

import (
	"image/color"
	"math"
)

// A curvesFigure overlays the three channel sequences against sample
// index, red, green and blue, with a grid and nice-step ticks.
type curvesFigure struct {
	r, g, b []float64
	yTop    float64
}

func newCurvesFigure(r, g, b []float64) *curvesFigure {
	f := new(curvesFigure)
	f.r = r
	f.g = g
	f.b = b

	maxv := 0.0
	for _, series := range [][]float64{r, g, b} {
		for _, v := range series {
			if finite(v) && v > maxv {
				maxv = v
			}
		}
	}
	if maxv < 1 {
		maxv = 1
	}
	// Round the top of the axis up to a tick boundary.
	step := niceStep(maxv / 5)
	f.yTop = math.Ceil(maxv/step) * step
	return f
}

func (f *curvesFigure) update() {}

func (f *curvesFigure) draw(c *Canvas) {
	w, h := c.Size()
	left, right, top, bottom := 56, 16, 24, 36
	pw := w - left - right
	ph := h - top - bottom
	if pw <= 2 || ph <= 2 {
		return
	}

	c.FillRect(left, top, pw, ph, colorPanel)
	f.drawGrid(c, left, top, pw, ph)

	f.drawSeries(c, f.r, colorRed, left, top, pw, ph)
	f.drawSeries(c, f.g, colorGreen, left, top, pw, ph)
	f.drawSeries(c, f.b, colorBlue, left, top, pw, ph)

	f.drawLegend(c, left, top)
	c.Text(8, h-8, "channel value against sample index", colorDim)
}

func (f *curvesFigure) drawGrid(c *Canvas, left, top, pw, ph int) {
	xmax := float64(max(len(f.r)-1, 1))

	stepX := niceStep(xmax / float64(pw) * 60)
	for x := 0.0; x <= xmax; x += stepX {
		ix := left + int(x/xmax*float64(pw-1))
		for y := 0; y < ph; y++ {
			c.SetPixel(ix, top+y, colorGrid)
		}
		label := fmtAxis(x)
		c.Text(ix-c.TextWidth(label)/2, top+ph+14, label, colorDim)
	}

	stepY := niceStep(f.yTop / float64(ph) * 40)
	for y := 0.0; y <= f.yTop; y += stepY {
		iy := top + int((f.yTop-y)/f.yTop*float64(ph-1))
		for x := 0; x < pw; x++ {
			c.SetPixel(left+x, iy, colorGrid)
		}
		label := fmtAxis(y)
		c.Text(left-c.TextWidth(label)-6, iy+4, label, colorDim)
	}
}

func (f *curvesFigure) drawSeries(c *Canvas, values []float64, col color.RGBA, left, top, pw, ph int) {
	if len(values) == 0 {
		return
	}
	xmax := float64(max(len(values)-1, 1))
	xlim := float64(pw - 1)
	ylim := float64(ph - 1)

	prevOK := false
	var prevX, prevY float64
	for i, v := range values {
		if !finite(v) {
			prevOK = false
			continue
		}
		curX := float64(i) / xmax * xlim
		curY := (f.yTop - v) / f.yTop * ylim
		if prevOK {
			cx0, cy0, cx1, cy1, _, _, ok := liangBarsky(prevX, prevY, curX, curY, 0, 0, xlim, ylim)
			if ok {
				c.Line(left+round(cx0), top+round(cy0), left+round(cx1), top+round(cy1), col)
			}
		} else if curY >= 0 && curY <= ylim {
			c.SetPixel(left+round(curX), top+round(curY), col)
		}
		prevOK = true
		prevX, prevY = curX, curY
	}
}

func (f *curvesFigure) drawLegend(c *Canvas, left, top int) {
	entries := []struct {
		label string
		col   color.RGBA
	}{
		{"R", colorRed},
		{"G", colorGreen},
		{"B", colorBlue},
	}

	x := left + 8
	y := top + 8
	c.FillRect(x, y, 54, 14*len(entries)+4, colorGrid)
	for i, e := range entries {
		ey := y + 3 + 14*i
		c.FillRect(x+4, ey+4, 16, 3, e.col)
		c.Text(x+26, ey+10, e.label, colorFG)
	}
}
