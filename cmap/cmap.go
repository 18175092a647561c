// Package cmap implements the parametric colour map this project
// visualizes: three channel kernels over a parameter s in [0, 1],
// clamped below at zero. The same map colours Mandelbrot escape speeds,
// transitioning black, brown, orange, yellow, cyan, blue, dark blue and
// back to black as s grows.
package cmap

import (
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadSampleCount is returned by Sweep for sample counts below two.
var ErrBadSampleCount = errors.New("cmap: sample count must be at least 2")

// A Channel maps the parameter s to a single colour component on the
// byte scale. Negative raw values clamp to zero; there is no upper
// bound, and non-finite inputs propagate.
type Channel func(s float64) float64

// Red evaluates the red channel, s * 255^(1 - 2*s^45).
func Red(s float64) float64 {
	_, ninth, _, thirtySixth := powers(s)
	return clampLow(s * math.Pow(255.0, 1.0-2.0*ninth*thirtySixth))
}

// Green evaluates the green channel, 70*s - 880*s^18 + 701*s^9.
func Green(s float64) float64 {
	_, ninth, eighteenth, _ := powers(s)
	return clampLow(s*70.0 - 880.0*eighteenth + 701.0*ninth)
}

// Blue evaluates the blue channel, 80*s + 255*s^9 - 950*s^99.
func Blue(s float64) float64 {
	_, ninth, eighteenth, thirtySixth := powers(s)
	return clampLow(s*80.0 + ninth*255.0 - 950.0*thirtySixth*thirtySixth*eighteenth*ninth)
}

// powers builds the power ladder the kernels share, by repeated
// multiplication rather than math.Pow.
func powers(s float64) (third, ninth, eighteenth, thirtySixth float64) {
	third = s * s * s
	ninth = third * third * third
	eighteenth = ninth * ninth
	thirtySixth = eighteenth * eighteenth
	return third, ninth, eighteenth, thirtySixth
}

// clampLow forces negative values to zero. NaN falls through untouched.
func clampLow(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Sweep generates n uniformly spaced samples over [0, 1]. The first
// sample is exactly 0 and the last exactly 1.
func Sweep(n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrBadSampleCount
	}

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i) / float64(n-1)
	}
	return samples, nil
}

// Trace applies ch element-wise to samples, producing a fresh sequence
// of the same length. The input is never mutated.
func Trace(ch Channel, samples []float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = ch(s)
	}
	return out
}

// At evaluates all three channels at once.
func At(s float64) (r, g, b float64) {
	return Red(s), Green(s), Blue(s)
}

// Color returns the colour at s with the channels scaled down to the
// unit range.
func Color(s float64) colorful.Color {
	r, g, b := At(s)
	return colorful.Color{R: r / 255.0, G: g / 255.0, B: b / 255.0}
}

// LinearColor returns the channel values at s converted from sRGB to
// linear light, for gamma-correct blending and brightness scaling.
func LinearColor(s float64) (r, g, b float64) {
	return Color(s).Clamped().LinearRgb()
}
