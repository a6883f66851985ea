package interact_test

import (
	"testing"

	"github.com/chazu/hexgarden/pkg/interact"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrthoCameraUnproject(t *testing.T) {
	c := interact.NewOrthoCamera(800, 600)

	centre, ok := c.Unproject(v2.Vec{X: 400, Y: 300})
	require.True(t, ok)
	assert.InDelta(t, 0, centre.X, 1e-9)
	assert.InDelta(t, 0, centre.Y, 1e-9)

	// Frustum spans 120 units vertically; the top edge is world -Z.
	top, _ := c.Unproject(v2.Vec{X: 400, Y: 0})
	assert.InDelta(t, -60, top.Y, 1e-9)
	right, _ := c.Unproject(v2.Vec{X: 800, Y: 300})
	assert.InDelta(t, 80, right.X, 1e-9)

	for _, p := range []v2.Vec{{X: 13, Y: 77}, {X: 640, Y: 480}} {
		w, _ := c.Unproject(p)
		back := c.Project(w)
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestOrthoCameraDegenerateViewport(t *testing.T) {
	c := interact.NewOrthoCamera(0, 0)
	_, ok := c.Unproject(v2.Vec{})
	assert.False(t, ok)

	c.Resize(100, 100)
	_, ok = c.Unproject(v2.Vec{X: 50, Y: 50})
	assert.True(t, ok)
}

func TestOrthoCameraPanIgnoresEmptyViewport(t *testing.T) {
	c := interact.NewOrthoCamera(800, 600)
	c.Damping = 0
	c.Resize(0, 0)
	c.Pan(5, 5)
	assert.False(t, c.Update())

	c.Resize(1280, 800)
	assert.Equal(t, v2.Vec{}, c.Target)
	_, ok := c.Unproject(v2.Vec{X: 640, Y: 400})
	assert.True(t, ok)
}

func TestOrthoCameraZoomClamp(t *testing.T) {
	c := interact.NewOrthoCamera(800, 600)
	c.ZoomBy(100)
	assert.Equal(t, 8.0, c.Zoom)
	c.ZoomBy(0.0001)
	assert.Equal(t, 0.2, c.Zoom)

	c.Zoom = 2
	top, _ := c.Unproject(v2.Vec{X: 400, Y: 0})
	assert.InDelta(t, -30, top.Y, 1e-9)
}

func TestOrthoCameraPan(t *testing.T) {
	c := interact.NewOrthoCamera(800, 600)
	c.Damping = 0
	c.Pan(400, 0)
	assert.True(t, c.Update())
	assert.InDelta(t, -80, c.Target.X, 1e-9, "dragging right moves the view left")
	assert.False(t, c.Update())

	c.Damping = 0.5
	c.Pan(0, 300)
	assert.True(t, c.Update())
	assert.InDelta(t, -30, c.Target.Y, 1e-9)
	for c.Update() {
	}
	assert.InDelta(t, -60, c.Target.Y, 1e-4)
}
