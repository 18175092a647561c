// Package mandel renders the Mandelbrot set, the system the colour map
// exists to colour. Escape speeds come out in [0, 1] and drive cmap.
package mandel

import (
	"errors"
)

var (
	// ErrZeroResolution is returned when either image dimension is below one pixel.
	ErrZeroResolution = errors.New("mandel: resolution must be positive")
	// ErrZeroIterations is returned when the iteration limit is below one.
	ErrZeroIterations = errors.New("mandel: iteration limit must be positive")
	// ErrZeroSamples is returned when the supersampling grid is below one sample.
	ErrZeroSamples = errors.New("mandel: samples per pixel must be positive")
	// ErrNilPalette is returned when a colour render is requested without a palette.
	ErrNilPalette = errors.New("mandel: colour render needs a palette")
)

// A Frame is a rectangular region of the complex plane, given by its
// centre point and its extent along the real and imaginary axes.
type Frame struct {
	CenterReal   float64
	CenterImag   float64
	RealDistance float64
	ImagDistance float64
}

// RenderParameters describe how a Frame is turned into pixels.
// SqrtSamplesPerPixel is the supersampling grid size along one
// direction; 3 means each pixel is sampled up to 9 times.
type RenderParameters struct {
	XResolution         int
	YResolution         int
	MaxIterations       int
	SqrtSamplesPerPixel int
	Grayscale           bool
	Mirror              bool
}

// Validate checks the parameters for values that would make a render
// nonsensical.
func (p RenderParameters) Validate() error {
	if p.XResolution < 1 || p.YResolution < 1 {
		return ErrZeroResolution
	}
	if p.MaxIterations < 1 {
		return ErrZeroIterations
	}
	if p.SqrtSamplesPerPixel < 1 {
		return ErrZeroSamples
	}
	return nil
}
