package view

import (
	"fmt"
	"math"
)

// liangBarsky clips the segment (x0,y0)-(x1,y1) to an axis-aligned
// rectangle. It also reports the surviving parameter interval [u0, u1]
// so callers can interpolate per-vertex attributes such as depth.
func liangBarsky(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1, u0, u1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u0 = 0.0
	u1 = 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u1 {
				return 0, 0, 0, 0, 0, 0, false
			}
			if t > u0 {
				u0 = t
			}
		} else {
			if t < u0 {
				return 0, 0, 0, 0, 0, 0, false
			}
			if t < u1 {
				u1 = t
			}
		}
	}

	cx0 = clampFloat(x0+u0*dx, xmin, xmax)
	cy0 = clampFloat(y0+u0*dy, ymin, ymax)
	cx1 = clampFloat(x0+u1*dx, xmin, xmax)
	cy1 = clampFloat(y0+u1*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, u0, u1, true
}

// niceStep rounds a raw axis step up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 1
	}
	frac := raw / pow
	switch {
	case frac <= 1:
		return 1 * pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

// fmtAxis formats a tick label compactly for its magnitude.
func fmtAxis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000 || av < 0.01:
		return fmt.Sprintf("%.2g", v)
	case av >= 10:
		return fmt.Sprintf("%.0f", v)
	case av >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
