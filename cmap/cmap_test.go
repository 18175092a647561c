// Package cmap_test verifies the channel kernels against their closed
// forms and the clamping, length-preservation and determinism laws.
package cmap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/cmapviz/cmap"
)

func TestChannels_ZeroAtOrigin(t *testing.T) {
	// Every kernel is a sum of positive powers of s, so s = 0 gives 0.
	assert.Zero(t, cmap.Red(0))
	assert.Zero(t, cmap.Green(0))
	assert.Zero(t, cmap.Blue(0))
}

func TestChannels_AtOne(t *testing.T) {
	// R(1) = 255^(1-2) = 1/255. The raw green and blue values at s = 1
	// are -109 and -615, which clamp to zero.
	assert.InDelta(t, 1.0/255.0, cmap.Red(1), 1e-12)
	assert.Zero(t, cmap.Green(1))
	assert.Zero(t, cmap.Blue(1))
}

func TestChannels_NonNegativeOverSweep(t *testing.T) {
	samples, err := cmap.Sweep(1000)
	require.NoError(t, err)

	for _, s := range samples {
		assert.GreaterOrEqual(t, cmap.Red(s), 0.0, "R(%v)", s)
		assert.GreaterOrEqual(t, cmap.Green(s), 0.0, "G(%v)", s)
		assert.GreaterOrEqual(t, cmap.Blue(s), 0.0, "B(%v)", s)
	}
}

func TestChannels_MatchClosedForm(t *testing.T) {
	// The kernels build their powers by repeated multiplication; check
	// them against math.Pow at a few interior points.
	for _, s := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		wantR := s * math.Pow(255.0, 1.0-2.0*math.Pow(s, 45))
		wantG := math.Max(0, 70.0*s-880.0*math.Pow(s, 18)+701.0*math.Pow(s, 9))
		wantB := math.Max(0, 80.0*s+255.0*math.Pow(s, 9)-950.0*math.Pow(s, 99))

		assert.InDelta(t, wantR, cmap.Red(s), 1e-9, "R(%v)", s)
		assert.InDelta(t, wantG, cmap.Green(s), 1e-9, "G(%v)", s)
		assert.InDelta(t, wantB, cmap.Blue(s), 1e-9, "B(%v)", s)
	}
}

func TestSweep_Endpoints(t *testing.T) {
	samples, err := cmap.Sweep(1000)
	require.NoError(t, err)

	require.Len(t, samples, 1000)
	assert.Equal(t, 0.0, samples[0])
	assert.Equal(t, 1.0, samples[len(samples)-1])

	// Uniform spacing.
	step := samples[1] - samples[0]
	for i := 1; i < len(samples); i++ {
		assert.InDelta(t, step, samples[i]-samples[i-1], 1e-12)
	}
}

func TestSweep_BadCount(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := cmap.Sweep(n)
		require.ErrorIs(t, err, cmap.ErrBadSampleCount, "n = %d", n)
	}
}

func TestTrace_PreservesLength(t *testing.T) {
	for _, n := range []int{2, 3, 100, 999} {
		samples, err := cmap.Sweep(n)
		require.NoError(t, err)
		assert.Len(t, cmap.Trace(cmap.Red, samples), n)
	}
}

func TestTrace_PureAndDeterministic(t *testing.T) {
	samples, err := cmap.Sweep(500)
	require.NoError(t, err)

	input := append([]float64(nil), samples...)
	first := cmap.Trace(cmap.Green, samples)
	second := cmap.Trace(cmap.Green, samples)

	assert.Equal(t, first, second)
	assert.Equal(t, input, samples, "input must not be mutated")
}

func TestAt_AgreesWithChannels(t *testing.T) {
	r, g, b := cmap.At(0.5)
	assert.Equal(t, cmap.Red(0.5), r)
	assert.Equal(t, cmap.Green(0.5), g)
	assert.Equal(t, cmap.Blue(0.5), b)
}

func TestColor_UnitScale(t *testing.T) {
	c := cmap.Color(0.5)
	assert.InDelta(t, cmap.Red(0.5)/255.0, c.R, 1e-12)
	assert.InDelta(t, cmap.Green(0.5)/255.0, c.G, 1e-12)
	assert.InDelta(t, cmap.Blue(0.5)/255.0, c.B, 1e-12)
}

func TestLinearColor_WithinUnit(t *testing.T) {
	for _, s := range []float64{0, 0.25, 0.5, 0.75, 1} {
		r, g, b := cmap.LinearColor(s)
		for _, v := range []float64{r, g, b} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}
