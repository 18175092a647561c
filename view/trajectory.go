package view

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/cmapviz/cmap"
	"github.com/matt-g-everett/cmapviz/util"
)

// How many samples the tracer advances per tick.
const tracerSpeed = 3

// A trajectoryFigure shows the curve as a polyline inside the [0,255]^3
// box, with a tracer dot sweeping along it in the curve's own colour.
type trajectoryFigure struct {
	pts [][3]float64 // channel triplets normalized into [-1, 1]
	raw []float64    // the parameter samples, for the tracer colour

	pr       projector
	spin     bool
	showHint bool
	dragging bool
	lastX    int
	lastY    int

	tracer  int
	pulse   []float64
	pulseAt int
}

func newTrajectoryFigure(samples, r, g, b []float64) *trajectoryFigure {
	f := new(trajectoryFigure)
	f.raw = samples
	f.pts = make([][3]float64, len(samples))
	for i := range f.pts {
		f.pts[i] = [3]float64{
			r[i]/255.0*2.0 - 1.0,
			g[i]/255.0*2.0 - 1.0,
			b[i]/255.0*2.0 - 1.0,
		}
	}
	f.pr = projector{yaw: 0.6, pitch: 0.35, zoom: 1.0}
	f.spin = true
	f.showHint = true
	f.pulse = util.PulseLut(90)
	return f
}

func (f *trajectoryFigure) update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		f.spin = !f.spin
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if f.dragging {
			f.pr.yaw += float64(x-f.lastX) * 0.01
			f.pr.pitch = clampFloat(f.pr.pitch+float64(y-f.lastY)*0.01, -1.5, 1.5)
		}
		f.dragging = true
		f.lastX, f.lastY = x, y
	} else {
		f.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		f.pr.zoom = clampFloat(f.pr.zoom*math.Pow(1.1, wy), 0.2, 8.0)
	}

	if f.spin && !f.dragging {
		f.pr.yaw += 0.01
	}

	if len(f.pts) > 0 {
		f.tracer = (f.tracer + tracerSpeed) % len(f.pts)
	}
	if len(f.pulse) > 0 {
		f.pulseAt = (f.pulseAt + 1) % len(f.pulse)
	}
}

func (f *trajectoryFigure) draw(c *Canvas) {
	w, h := c.Size()
	zbuf := make([]uint8, w*h)
	for i := range zbuf {
		zbuf[i] = 0xFF
	}

	drawWireBox(c, zbuf, &f.pr, colorAxis)
	f.drawAxisLabels(c)

	xmax := float64(w - 1)
	ymax := float64(h - 1)

	prevOK := false
	var prevX, prevY, prevD float64
	for i, pt := range f.pts {
		// A non-finite sample breaks the polyline instead of crashing
		// the projection.
		if !finite(pt[0]) || !finite(pt[1]) || !finite(pt[2]) {
			prevOK = false
			continue
		}
		px, py, depth, ok := f.pr.project(pt[0], pt[1], pt[2], w, h)
		if !ok {
			prevOK = false
			continue
		}
		if prevOK {
			cx0, cy0, cx1, cy1, u0, u1, ok := liangBarsky(prevX, prevY, px, py, 0, 0, xmax, ymax)
			if ok {
				d0 := prevD + u0*(depth-prevD)
				d1 := prevD + u1*(depth-prevD)
				depthLine(c, zbuf, cx0, cy0, d0, cx1, cy1, d1, f.segmentColor(i))
			}
		}
		prevOK = true
		prevX, prevY, prevD = px, py, depth
	}

	f.drawTracer(c, w, h)
	if f.showHint {
		c.Text(8, h-20, "drag rotate  wheel zoom  space spin", colorDim)
	}
}

// segmentColor is the curve's own colour at sample i.
func (f *trajectoryFigure) segmentColor(i int) color.RGBA {
	r, g, b := cmap.Color(f.raw[i]).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// drawTracer draws the sweeping dot, its brightness pulsed by the eased
// gain table and scaled in linear light.
func (f *trajectoryFigure) drawTracer(c *Canvas, w, h int) {
	if len(f.pts) == 0 || len(f.pulse) == 0 {
		return
	}
	pt := f.pts[f.tracer]
	if !finite(pt[0]) || !finite(pt[1]) || !finite(pt[2]) {
		return
	}
	px, py, _, ok := f.pr.project(pt[0], pt[1], pt[2], w, h)
	if !ok {
		return
	}

	gain := f.pulse[f.pulseAt]
	lr, lg, lb := cmap.LinearColor(f.raw[f.tracer])
	r, g, b := colorful.LinearRgb(lr*gain, lg*gain, lb*gain).Clamped().RGB255()
	c.FillRect(round(px)-2, round(py)-2, 5, 5, color.RGBA{R: r, G: g, B: b, A: 0xFF})
}

func (f *trajectoryFigure) drawAxisLabels(c *Canvas) {
	w, h := c.Size()
	labels := []struct {
		text string
		pos  [3]float64
		col  color.RGBA
	}{
		{"R", [3]float64{1.12, -1, -1}, colorRed},
		{"G", [3]float64{-1, 1.12, -1}, colorGreen},
		{"B", [3]float64{-1, -1, 1.12}, colorBlue},
	}
	for _, l := range labels {
		px, py, _, ok := f.pr.project(l.pos[0], l.pos[1], l.pos[2], w, h)
		if !ok {
			continue
		}
		c.Text(round(px)-3, round(py)+4, l.text, l.col)
	}
}

// RenderTrajectory draws the 3D trajectory once at the default viewing
// angle and returns the raster, for snapshot export.
func RenderTrajectory(samples, r, g, b []float64, w, h int) *image.RGBA {
	f := newTrajectoryFigure(samples, r, g, b)
	f.spin = false
	f.showHint = false
	c := NewCanvas(w, h)
	c.Fill(colorBG)
	f.draw(c)
	return c.Image()
}
