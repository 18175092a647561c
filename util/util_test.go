package util_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/cmapviz/util"
)

func TestPulseLut_Symmetric(t *testing.T) {
	lut := util.PulseLut(90)
	assert.Len(t, lut, 90)

	for i := 0; i < len(lut)/2; i++ {
		assert.Equal(t, lut[i], lut[len(lut)-1-i], "index %d", i)
	}
}

func TestPulseLut_RampsFromDark(t *testing.T) {
	lut := util.PulseLut(120)

	assert.Zero(t, lut[0])
	for i, v := range lut {
		assert.GreaterOrEqual(t, v, 0.0, "index %d", i)
		assert.LessOrEqual(t, v, 1.0, "index %d", i)
	}
	// The middle of the pulse is near full gain.
	assert.Greater(t, lut[len(lut)/2], 0.9)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, util.Clamp01(-2))
	assert.Equal(t, 0.25, util.Clamp01(0.25))
	assert.Equal(t, 1.0, util.Clamp01(7))
	assert.True(t, math.IsNaN(util.Clamp01(math.NaN())))
}
