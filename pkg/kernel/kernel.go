// Package kernel defines the abstract geometry kernel used to mesh placed
// items. Implementations (sdfx) build solids from ground-plane outlines and
// tessellate them into flat triangle buffers for the renderer. The kernel
// abstraction allows swapping backends without changing the rest of the
// system.
package kernel

import v2 "github.com/deadsy/sdfx/vec/v2"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
//
// World space is Y-up: outlines live in the XZ ground plane, with the
// outline's Y component mapped to world Z.
type Kernel interface {
	// Prism extrudes a closed outline upward from y=0 to y=height, rounding
	// every edge by bevel.
	Prism(outline []v2.Vec, height, bevel float64) (Solid, error)

	// Translate moves a solid by (x, y, z).
	Translate(s Solid, x, y, z float64) Solid

	// ToMesh tessellates a solid.
	ToMesh(s Solid) (*Mesh, error)
}
