package mandel

import (
	"context"
	"image"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/matt-g-everett/cmapviz/cmap"
	"github.com/matt-g-everett/cmapviz/util"
)

// Render draws the frame at the requested resolution into an RGBA
// image. Columns are fanned out over an errgroup sized to the machine;
// a cancelled context abandons the render. When the frame straddles the
// real axis and mirroring is on, only the larger half is computed and
// the rest copied, since the set is symmetric under conjugation.
func Render(ctx context.Context, params RenderParameters, frame Frame, palette *cmap.Palette) (*image.RGBA, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if !params.Grayscale && palette == nil {
		return nil, ErrNilPalette
	}

	xRes := params.XResolution

	mirror := params.Mirror && math.Abs(frame.CenterImag) < frame.ImagDistance
	// Assume the half with negative imaginary part is the larger one;
	// if that is wrong the image gets flipped vertically afterwards.
	flip := frame.CenterImag > 0
	startReal := frame.CenterReal - frame.RealDistance/2.0
	startImag := frame.CenterImag - frame.ImagDistance/2.0
	if flip {
		startImag = -frame.CenterImag - frame.ImagDistance/2.0
	}

	img := image.NewRGBA(image.Rect(0, 0, xRes, params.YResolution))

	g, ctx := errgroup.WithContext(ctx)
	workers := runtime.NumCPU()
	if workers > xRes {
		workers = xRes
	}
	band := (xRes + workers - 1) / workers
	for w := 0; w < workers; w++ {
		x0 := w * band
		x1 := x0 + band
		if x1 > xRes {
			x1 = xRes
		}
		g.Go(func() error {
			for x := x0; x < x1; x++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				renderColumn(params, frame, palette, img, x, startReal, startImag, mirror, flip)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// renderColumn colours one column of the image. Workers touch disjoint
// columns, so the writes never overlap.
func renderColumn(params RenderParameters, frame Frame, palette *cmap.Palette, img *image.RGBA, x int, startReal, startImag float64, mirror, flip bool) {
	xRes := params.XResolution
	yRes := params.YResolution
	realDelta := frame.RealDistance / float64(max(xRes-1, 1))
	imagDelta := frame.ImagDistance / float64(max(yRes-1, 1))
	cRe := startReal + frame.RealDistance*float64(x)/float64(xRes)

	column := make([]color.RGBA, yRes)
	mirrorFrom := 0
	for y := 0; y < yRes; y++ {
		cIm := startImag + frame.ImagDistance*float64(y)/float64(yRes)

		var c color.RGBA
		if mirror && cIm > 0.0 && mirrorFrom > 0 {
			mirrorFrom--
			c = column[mirrorFrom]
		} else {
			esc := SupersampledIterate(params.SqrtSamplesPerPixel, cRe, cIm, realDelta, imagDelta, params.MaxIterations)
			if params.Grayscale {
				luma := uint8(255.0 * util.Clamp01(esc))
				c = color.RGBA{R: luma, G: luma, B: luma, A: 0xFF}
			} else {
				r, g, b := palette.Sample(esc).Clamped().RGB255()
				c = color.RGBA{R: r, G: g, B: b, A: 0xFF}
			}
			column[y] = c
			mirrorFrom = y + 1
		}

		// The computation walks imaginary values bottom-up; image rows
		// grow top-down.
		row := yRes - 1 - y
		if flip {
			row = y
		}
		img.SetRGBA(x, row, c)
	}
}
