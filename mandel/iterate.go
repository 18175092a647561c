package mandel

import (
	"math"
)

// Iterating past |z| > 2 all the way to |z| >= 6 reduces colour banding
// in the smoothed escape speed.
const bailoutRadiusSqr = 36.0

// Offset that centres the smoothed iteration count.
const smoothingOffset = 2.8

// Past this escape speed a sample is far from the set and the rest of
// its supersampling grid is skipped.
const ssaaCutoff = 0.95

// Iterate runs z -> z^2 + c from z = c until c escapes or the iteration
// limit is reached, and returns the escape speed of c as a number in
// [0, 1]. Points inside the set report zero.
func Iterate(cRe, cIm float64, maxIterations int) float64 {
	cImagSqr := cIm * cIm
	magSqr := cRe*cRe + cImagSqr

	// Points in the main cardioid or the period-2 bulb never escape.
	if (cRe+1.0)*(cRe+1.0)+cImagSqr <= 0.0625 ||
		magSqr*(8.0*magSqr-3.0) <= 0.09375-cRe {
		return 0.0
	}

	zRe := cRe
	zIm := cIm
	zReSqr := magSqr - cImagSqr
	zImSqr := cImagSqr

	// The starting values above already amount to one iteration.
	iterations := 1

	// Three multiplications per loop, the minimum.
	for iterations < maxIterations && zReSqr+zImSqr <= bailoutRadiusSqr {
		zIm *= zRe
		zIm += zIm
		zIm += cIm
		zRe = zReSqr - zImSqr + cRe
		zReSqr = zRe * zRe
		zImSqr = zIm * zIm
		iterations++
	}

	if iterations == maxIterations {
		return 0.0
	}

	// Smooth the iteration count with the escape distance so adjacent
	// pixels do not band.
	return (float64(maxIterations-iterations) +
		math.Log2(math.Log(math.Sqrt(zReSqr+zImSqr))) - smoothingOffset) /
		float64(maxIterations)
}

// SupersampledIterate averages Iterate over a centred grid of
// ssaa x ssaa points inside the pixel at cRe + cIm*i. The walk starts
// mid-grid so that an early abort has still sampled the points nearest
// the pixel centre.
func SupersampledIterate(ssaa int, cRe, cIm, realDelta, imagDelta float64, maxIterations int) float64 {
	fssaa := float64(ssaa)
	maxSamples := ssaa * ssaa

	samples := 0
	total := 0.0
	for n := 0; n < maxSamples; n++ {
		k := (n + maxSamples/2) % maxSamples
		i := k/ssaa + 1
		j := k%ssaa + 1
		colOffset := (2.0*float64(i) - fssaa - 1.0) / fssaa
		rowOffset := (2.0*float64(j) - fssaa - 1.0) / fssaa

		esc := Iterate(cRe+rowOffset*realDelta, cIm+colOffset*imagDelta, maxIterations)
		total += esc
		samples++

		if esc > ssaaCutoff {
			break
		}
	}
	return total / float64(samples)
}
