package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/cmapviz/cmap"
	"github.com/matt-g-everett/cmapviz/export"
	"github.com/matt-g-everett/cmapviz/mandel"
	"github.com/matt-g-everett/cmapviz/stream"
	"github.com/matt-g-everett/cmapviz/view"
)

type app struct {
	samples []float64
	r       []float64
	g       []float64
	b       []float64
	palette *cmap.Palette
}

func newApp(sampleCount int) (*app, error) {
	a := new(app)

	samples, err := cmap.Sweep(sampleCount)
	if err != nil {
		return nil, err
	}
	a.samples = samples
	a.r = cmap.Trace(cmap.Red, samples)
	a.g = cmap.Trace(cmap.Green, samples)
	a.b = cmap.Trace(cmap.Blue, samples)

	a.palette, err = cmap.BuildPalette(cmap.DefaultPaletteSize)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) view() error {
	return view.Run(view.Options{
		Title:   "cmapviz",
		Samples: a.samples,
		R:       a.r,
		G:       a.g,
		B:       a.b,
		Palette: a.palette,
	})
}

func (a *app) export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := export.Curves(filepath.Join(dir, "curves.png"), a.r, a.g, a.b); err != nil {
		return err
	}
	if err := export.Trajectory(filepath.Join(dir, "trajectory.png"), a.samples, a.r, a.g, a.b, 960, 720); err != nil {
		return err
	}
	return export.Swatch(filepath.Join(dir, "swatch.png"), a.palette, 64, 512)
}

func (a *app) render(path string, realCenter, imagCenter, zoom float64, pixels int, aspect float64, ssaa, iterations int, grayscale bool) error {
	// Every unit of zoom halves the view extent.
	imagDistance := 8.0 / (3.0 * math.Pow(2.0, zoom))
	frame := mandel.Frame{
		CenterReal:   realCenter,
		CenterImag:   imagCenter,
		RealDistance: imagDistance * aspect,
		ImagDistance: imagDistance,
	}
	params := mandel.RenderParameters{
		XResolution:         int(float64(pixels) * aspect),
		YResolution:         pixels,
		MaxIterations:       iterations,
		SqrtSamplesPerPixel: ssaa,
		Grayscale:           grayscale,
		Mirror:              true,
	}

	img, err := mandel.Render(context.Background(), params, frame, a.palette)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (a *app) stream(configPath string, secs int) error {
	cfg, err := stream.LoadConfig(configPath)
	if err != nil {
		return err
	}

	options := mqtt.NewClientOptions().
		AddBroker(cfg.Mqtt.URL).
		SetClientID("cmapviz").
		SetUsername(cfg.Mqtt.Username).
		SetPassword(cfg.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	client := mqtt.NewClient(options)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect to %s: %w", cfg.Mqtt.URL, token.Error())
	}
	defer client.Disconnect(250)
	log.Println("Connected")

	animation := stream.NewWash(a.palette, cfg.Strip.Pixels, 40.0)
	s := stream.NewStreamer(client, cfg.Mqtt.Topics.Stream, animation)
	return s.Stream(context.Background(), time.Duration(secs)*time.Second)
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	samples := flag.Int("samples", 1000, "Number of parameter samples over [0, 1].")
	exportDir := flag.String("export", "", "Write curves.png, trajectory.png and swatch.png to this directory.")
	renderPath := flag.String("render", "", "Render the Mandelbrot set to this PNG file.")
	realCenter := flag.Float64("real", -0.75, "Real part of the render centre point.")
	imagCenter := flag.Float64("imag", 0.0, "Imaginary part of the render centre point.")
	zoom := flag.Float64("zoom", 0.0, "Zoom level for the render.")
	pixels := flag.Int("pixels", 1080, "Pixels along the y-axis of the render.")
	aspect := flag.Float64("aspect", 1.5, "Aspect ratio of the render.")
	ssaa := flag.Int("ssaa", 3, "Supersamples along one direction per pixel.")
	iterations := flag.Int("iterations", 256, "Maximum iterations per sample.")
	grayscale := flag.Bool("grayscale", false, "Render in grayscale.")
	doStream := flag.Bool("stream", false, "Publish a palette preview to an ledrx strip.")
	streamSecs := flag.Int("stream-secs", 10, "How long to stream for, in seconds.")
	configPath := flag.String("config", "config.yaml", "YAML config file for streaming.")
	flag.Parse()

	a, err := newApp(*samples)
	if err != nil {
		log.Fatal(err)
	}

	ran := false
	if *exportDir != "" {
		ran = true
		if err := a.export(*exportDir); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote curves.png, trajectory.png and swatch.png to %s", *exportDir)
	}
	if *renderPath != "" {
		ran = true
		if err := a.render(*renderPath, *realCenter, *imagCenter, *zoom, *pixels, *aspect, *ssaa, *iterations, *grayscale); err != nil {
			log.Fatal(err)
		}
		log.Printf("Rendered %s", *renderPath)
	}
	if *doStream {
		ran = true
		if err := a.stream(*configPath, *streamSecs); err != nil {
			log.Fatal(err)
		}
	}

	// With no mode flags, open the interactive viewer.
	if !ran {
		if err := a.view(); err != nil {
			log.Fatal(err)
		}
	}
}
