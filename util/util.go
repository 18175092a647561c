package util

import (
	"github.com/fogleman/ease"
)

// PulseLut generates a symmetric gain table that eases from zero up to
// full brightness and back down again.
func PulseLut(length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}

// Clamp01 bounds v into [0, 1]. NaN falls through untouched.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
