package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_ZGoesUp(t *testing.T) {
	pr := projector{yaw: 0, pitch: 0.8, zoom: 1}

	_, py0, _, ok := pr.project(0, 0, 0, 200, 160)
	require.True(t, ok, "project origin")
	_, pyUp, _, ok := pr.project(0, 0, 1, 200, 160)
	require.True(t, ok, "project +Z")
	_, pyDown, _, ok := pr.project(0, 0, -1, 200, 160)
	require.True(t, ok, "project -Z")

	// In screen coordinates, smaller y means "up".
	assert.Less(t, pyUp, py0)
	assert.Less(t, py0, pyDown)
}

func TestProject_OriginCentred(t *testing.T) {
	pr := projector{yaw: 0.3, pitch: 0.5, zoom: 1}

	px, py, _, ok := pr.project(0, 0, 0, 201, 161)
	require.True(t, ok)
	assert.InDelta(t, 100.0, px, 1e-9)
	assert.InDelta(t, 80.0, py, 1e-9)
}

func TestProject_RejectsPointsNearCamera(t *testing.T) {
	pr := projector{yaw: 0, pitch: 0, zoom: 1}

	// With no rotation the depth term is dist - z; z = 2.9 leaves too
	// little headroom in front of the camera.
	_, _, _, ok := pr.project(0, 0, 2.9, 200, 160)
	assert.False(t, ok)
}

func TestProject_DepthOrdersFrontToBack(t *testing.T) {
	pr := projector{yaw: 0, pitch: 0, zoom: 1}

	_, _, dNear, ok := pr.project(0, 0, 1, 200, 160)
	require.True(t, ok)
	_, _, dFar, ok := pr.project(0, 0, -1, 200, 160)
	require.True(t, ok)

	assert.Less(t, dNear, dFar)
	assert.Less(t, depthToByte(dNear), depthToByte(dFar))
}
