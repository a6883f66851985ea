package interact

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Projector maps a screen point in pixels to a point on the ground plane.
// The returned vector holds world X and world Z.
type Projector interface {
	Unproject(screen v2.Vec) (v2.Vec, bool)
}

// OrthoCamera is a top-down orthographic camera over the ground plane.
// Screen right is world +X and screen down is world +Z.
type OrthoCamera struct {
	Width, Height float64 // viewport, pixels
	FrustumSize   float64 // world units spanned vertically at zoom 1
	Zoom          float64
	MinZoom       float64
	MaxZoom       float64
	Damping       float64 // fraction of pending pan dropped per update
	Target        v2.Vec  // world X/Z under the viewport centre

	pending v2.Vec
}

// NewOrthoCamera returns a camera with the standard frustum and zoom range.
func NewOrthoCamera(width, height float64) *OrthoCamera {
	return &OrthoCamera{
		Width:       width,
		Height:      height,
		FrustumSize: 120,
		Zoom:        1,
		MinZoom:     0.2,
		MaxZoom:     8,
		Damping:     0.05,
	}
}

// Resize updates the viewport.
func (c *OrthoCamera) Resize(width, height float64) {
	c.Width, c.Height = width, height
}

func (c *OrthoCamera) halfExtents() (float64, float64) {
	aspect := c.Width / c.Height
	half := c.FrustumSize / 2 / c.Zoom
	return half * aspect, half
}

// Unproject implements Projector. A degenerate viewport reports false.
func (c *OrthoCamera) Unproject(screen v2.Vec) (v2.Vec, bool) {
	if c.Width <= 0 || c.Height <= 0 || c.Zoom <= 0 {
		return v2.Vec{}, false
	}
	nx := screen.X/c.Width*2 - 1
	ny := -(screen.Y/c.Height*2 - 1)
	hw, hh := c.halfExtents()
	return v2.Vec{X: c.Target.X + nx*hw, Y: c.Target.Y - ny*hh}, true
}

// Project maps a ground point back to screen pixels.
func (c *OrthoCamera) Project(world v2.Vec) v2.Vec {
	hw, hh := c.halfExtents()
	nx := (world.X - c.Target.X) / hw
	ny := -(world.Y - c.Target.Y) / hh
	return v2.Vec{X: (nx + 1) / 2 * c.Width, Y: (1 - ny) / 2 * c.Height}
}

// ZoomBy multiplies the zoom, clamped to the camera's range.
func (c *OrthoCamera) ZoomBy(factor float64) {
	c.Zoom = min(c.MaxZoom, max(c.MinZoom, c.Zoom*factor))
}

// Pan queues a drag of the view by a pixel delta. The ground follows the
// pointer, so the target moves opposite to the drag. An empty viewport
// ignores pans.
func (c *OrthoCamera) Pan(dx, dy float64) {
	if c.Width <= 0 || c.Height <= 0 {
		return
	}
	hw, hh := c.halfExtents()
	c.pending.X -= dx / c.Width * 2 * hw
	c.pending.Y -= dy / c.Height * 2 * hh
}

// Update applies queued pan with damping. It reports whether the view moved.
func (c *OrthoCamera) Update() bool {
	if c.Damping <= 0 {
		moved := c.pending != (v2.Vec{})
		c.Target = c.Target.Add(c.pending)
		c.pending = v2.Vec{}
		return moved
	}
	step := c.pending.MulScalar(c.Damping)
	if step.X*step.X+step.Y*step.Y < 1e-12 {
		c.pending = v2.Vec{}
		return false
	}
	c.Target = c.Target.Add(step)
	c.pending = c.pending.Sub(step)
	return true
}
