package view

import (
	"image/color"
	"math"
)

// Distance from the camera to the centre of the unit cube.
const cameraDist = 3.0

// A projector turns points in the cube [-1,1]^3 into canvas
// coordinates: yaw about the vertical axis, then pitch, then a
// perspective divide. The returned depth is the distance term of the
// divide, usable as a z-buffer key.
type projector struct {
	yaw   float64
	pitch float64
	zoom  float64
}

func (p *projector) project(x, y, z float64, w, h int) (px, py, depth float64, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, false
	}

	zoom := p.zoom
	if zoom <= 0 || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		zoom = 1
	}

	cYaw := math.Cos(p.yaw)
	sYaw := math.Sin(p.yaw)
	x1 := x*cYaw - y*sYaw
	y1 := x*sYaw + y*cYaw
	z1 := z

	// Positive pitch tips the top of the cube toward the viewer, so +Z
	// lands above the centre in screen coordinates.
	cPitch := math.Cos(p.pitch)
	sPitch := math.Sin(p.pitch)
	y2 := y1*cPitch + z1*sPitch
	z2 := z1*cPitch - y1*sPitch
	x2 := x1

	denom := cameraDist - z2
	if denom <= 0.2 {
		return 0, 0, 0, false
	}

	persp := zoom / denom
	size := 0.45 * math.Min(float64(w-1), float64(h-1))
	if size <= 1 {
		return 0, 0, 0, false
	}

	px = float64(w-1)/2 + x2*persp*size
	py = float64(h-1)/2 - y2*persp*size
	return px, py, denom, true
}

// Edges of the [-1,1]^3 cube the trajectory lives in.
var boxEdges = [12][2][3]float64{
	{{-1, -1, -1}, {1, -1, -1}},
	{{-1, 1, -1}, {1, 1, -1}},
	{{-1, -1, 1}, {1, -1, 1}},
	{{-1, 1, 1}, {1, 1, 1}},

	{{-1, -1, -1}, {-1, 1, -1}},
	{{1, -1, -1}, {1, 1, -1}},
	{{-1, -1, 1}, {-1, 1, 1}},
	{{1, -1, 1}, {1, 1, 1}},

	{{-1, -1, -1}, {-1, -1, 1}},
	{{1, -1, -1}, {1, -1, 1}},
	{{-1, 1, -1}, {-1, 1, 1}},
	{{1, 1, -1}, {1, 1, 1}},
}

// drawWireBox draws the cube edges z-buffered so the curve can pass in
// front of and behind them.
func drawWireBox(c *Canvas, zbuf []uint8, pr *projector, col color.RGBA) {
	w, h := c.Size()
	for _, e := range boxEdges {
		x0, y0, d0, ok0 := pr.project(e[0][0], e[0][1], e[0][2], w, h)
		x1, y1, d1, ok1 := pr.project(e[1][0], e[1][1], e[1][2], w, h)
		if !ok0 || !ok1 {
			continue
		}
		cx0, cy0, cx1, cy1, u0, u1, ok := liangBarsky(x0, y0, x1, y1, 0, 0, float64(w-1), float64(h-1))
		if !ok {
			continue
		}
		depthLine(c, zbuf, cx0, cy0, d0+u0*(d1-d0), cx1, cy1, d0+u1*(d1-d0), col)
	}
}

// depthLine draws a line between two projected points, interpolating
// depth along it and only writing pixels that win the z-buffer test.
func depthLine(c *Canvas, zbuf []uint8, x0, y0, d0, x1, y1, d1 float64, col color.RGBA) {
	w, h := c.Size()
	if w <= 0 || h <= 0 || len(zbuf) < w*h {
		return
	}

	dx := x1 - x0
	dy := y1 - y0
	steps := math.Abs(dx)
	if ay := math.Abs(dy); ay > steps {
		steps = ay
	}
	n := int(steps)
	for i := 0; i <= n; i++ {
		t := 0.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		ix := round(x0 + dx*t)
		iy := round(y0 + dy*t)
		if ix < 0 || ix >= w || iy < 0 || iy >= h {
			continue
		}
		idx := iy*w + ix
		z := depthToByte(d0 + (d1-d0)*t)
		if z <= zbuf[idx] {
			zbuf[idx] = z
			c.SetPixel(ix, iy, col)
		}
	}
}

func depthToByte(denom float64) uint8 {
	if denom < 0 || math.IsNaN(denom) || math.IsInf(denom, 0) {
		return 0xFF
	}
	v := int(denom * 50)
	if v < 0 {
		v = 0
	}
	if v > 0xFF {
		v = 0xFF
	}
	return uint8(v)
}
