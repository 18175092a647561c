package view

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/matt-g-everett/cmapviz/cmap"
)

// Options configure the viewer window.
type Options struct {
	Title   string
	Width   int
	Height  int
	Samples []float64
	R       []float64
	G       []float64
	B       []float64
	Palette *cmap.Palette
}

// A figure is one full-window view the user can switch to.
type figure interface {
	update()
	draw(c *Canvas)
}

// Run opens the viewer window and blocks until the user closes it.
// Background renders are torn down when the window goes away.
func Run(opts Options) error {
	if opts.Width <= 0 {
		opts.Width = 960
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	if opts.Title == "" {
		opts.Title = "cmapviz"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &game{
		canvas: NewCanvas(opts.Width, opts.Height),
		figures: []figure{
			newTrajectoryFigure(opts.Samples, opts.R, opts.G, opts.B),
			newCurvesFigure(opts.R, opts.G, opts.B),
			newFractalFigure(ctx, opts.Palette, opts.Width, opts.Height),
		},
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	canvas  *Canvas
	figures []figure
	active  int
	fbImg   *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.active = (g.active + 1) % len(g.figures)
	}
	for i, k := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3} {
		if i < len(g.figures) && inpututil.IsKeyJustPressed(k) {
			g.active = i
		}
	}

	g.figures[g.active].update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.canvas.Size()
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(w, h)
	}

	g.canvas.Fill(colorBG)
	g.figures[g.active].draw(g.canvas)
	g.canvas.Text(8, h-6, "1 trajectory  2 curves  3 fractal  tab cycle  esc quit", colorDim)

	g.fbImg.WritePixels(g.canvas.Image().Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Size()
}
