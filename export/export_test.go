package export_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/cmapviz/cmap"
	"github.com/matt-g-everett/cmapviz/export"
)

func channelData(t *testing.T) (samples, r, g, b []float64) {
	t.Helper()
	samples, err := cmap.Sweep(200)
	require.NoError(t, err)
	return samples, cmap.Trace(cmap.Red, samples), cmap.Trace(cmap.Green, samples), cmap.Trace(cmap.Blue, samples)
}

func decodePNG(t *testing.T, path string) (w, h int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestCurves_WritesPNG(t *testing.T) {
	_, r, g, b := channelData(t)
	path := filepath.Join(t.TempDir(), "curves.png")

	require.NoError(t, export.Curves(path, r, g, b))

	w, h := decodePNG(t, path)
	assert.Greater(t, w, 0)
	assert.Greater(t, h, 0)
}

func TestSwatch_WritesGradientStrip(t *testing.T) {
	palette, err := cmap.BuildPalette(64)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "swatch.png")

	require.NoError(t, export.Swatch(path, palette, 32, 256))

	w, h := decodePNG(t, path)
	assert.Equal(t, 32, w)
	assert.Equal(t, 256, h)
}

func TestTrajectory_WritesSnapshot(t *testing.T) {
	samples, r, g, b := channelData(t)
	path := filepath.Join(t.TempDir(), "trajectory.png")

	require.NoError(t, export.Trajectory(path, samples, r, g, b, 320, 240))

	w, h := decodePNG(t, path)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestCurves_CreateFailure(t *testing.T) {
	_, r, g, b := channelData(t)
	err := export.Curves(filepath.Join(t.TempDir(), "missing", "curves.png"), r, g, b)
	require.Error(t, err)
}
