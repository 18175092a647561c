package view

import (
	"context"
	"errors"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/matt-g-everett/cmapviz/cmap"
	"github.com/matt-g-everett/cmapviz/mandel"
)

const (
	previewIterations = 96
	fullIterations    = 512
	fullSamples       = 3
)

// A fractalFigure applies the palette to a live Mandelbrot render.
// Renders run on a background goroutine; changing the view cancels the
// in-flight render and starts another at preview quality.
type fractalFigure struct {
	base    context.Context
	palette *cmap.Palette
	frame   mandel.Frame
	params  mandel.RenderParameters

	img     *image.RGBA
	err     error
	pending bool
	cancel  context.CancelFunc
	results chan renderResult

	dragging bool
	lastX    int
	lastY    int
}

type renderResult struct {
	img *image.RGBA
	err error
}

func newFractalFigure(base context.Context, palette *cmap.Palette, w, h int) *fractalFigure {
	f := new(fractalFigure)
	f.base = base
	f.palette = palette
	f.results = make(chan renderResult, 4)

	// The production renderer's initial view of the set.
	imagDistance := 8.0 / 3.0
	f.frame = mandel.Frame{
		CenterReal:   -0.75,
		CenterImag:   0.0,
		RealDistance: imagDistance * float64(w) / float64(h),
		ImagDistance: imagDistance,
	}
	f.params = mandel.RenderParameters{
		XResolution:         w,
		YResolution:         h,
		MaxIterations:       previewIterations,
		SqrtSamplesPerPixel: 1,
		Mirror:              true,
	}
	return f
}

func (f *fractalFigure) update() {
	select {
	case res := <-f.results:
		f.pending = false
		if res.err == nil {
			f.img = res.img
		} else if !errors.Is(res.err, context.Canceled) {
			f.err = res.err
		}
	default:
	}

	if f.img == nil && !f.pending && f.err == nil {
		f.restart(false)
	}

	moved := false
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if f.dragging && (x != f.lastX || y != f.lastY) {
			f.frame.CenterReal -= float64(x-f.lastX) * f.frame.RealDistance / float64(f.params.XResolution)
			f.frame.CenterImag += float64(y-f.lastY) * f.frame.ImagDistance / float64(f.params.YResolution)
			moved = true
		}
		f.dragging = true
		f.lastX, f.lastY = x, y
	} else {
		f.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		factor := math.Pow(0.8, wy)
		f.frame.RealDistance *= factor
		f.frame.ImagDistance *= factor
		moved = true
	}

	if moved {
		f.restart(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f.restart(true)
	}
}

// restart cancels any in-flight render and kicks off a new one for the
// current frame. A full-quality render uses the production iteration
// limit and supersampling grid.
func (f *fractalFigure) restart(full bool) {
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(f.base)
	f.cancel = cancel
	f.pending = true

	params := f.params
	if full {
		params.MaxIterations = fullIterations
		params.SqrtSamplesPerPixel = fullSamples
	}
	frame := f.frame
	go func() {
		img, err := mandel.Render(ctx, params, frame, f.palette)
		select {
		case f.results <- renderResult{img: img, err: err}:
		default:
		}
	}()
}

func (f *fractalFigure) draw(c *Canvas) {
	if f.img != nil {
		c.Blit(0, 0, f.img)
	}

	_, h := c.Size()
	switch {
	case f.err != nil:
		c.Text(8, 20, "render failed: "+f.err.Error(), colorFG)
	case f.pending:
		c.Text(8, 20, "rendering...", colorDim)
	}
	c.Text(8, h-20, "drag pan  wheel zoom  r full quality", colorDim)
}
