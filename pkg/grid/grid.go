// Package grid builds the bounded hexagonal lattice shown on the canvas.
//
// A Grid is built once from a layout and radius and never changes. Each cell
// carries flat geometry buffers for its border outline and its filled
// polygon; the grid never chooses which fill style a cell is drawn with.
package grid

import (
	"errors"
	"fmt"

	"github.com/chazu/hexgarden/pkg/hex"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// ErrRadius is returned when a grid is requested with a negative radius.
var ErrRadius = errors.New("grid: radius must not be negative")

// Cell is one immutable lattice cell.
type Cell struct {
	Hex     hex.Cube  `json:"hex"`
	Key     string    `json:"key"`
	Center  v2.Vec    `json:"center"`
	Corners [6]v2.Vec `json:"corners"`
	// Border holds 6 line segments as 12 xyz vertices on the ground plane.
	Border []float32 `json:"border"`
	// Fill holds 4 fan triangles from corner 0 as 12 xyz vertices.
	Fill []float32 `json:"fill"`
}

// Grid is the set of cells within a radius of the origin.
type Grid struct {
	layout hex.Layout
	radius int
	cells  []*Cell
	byKey  map[hex.Cube]*Cell
}

// Build enumerates every cell within radius of the origin under layout.
func Build(layout hex.Layout, radius int) (*Grid, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrRadius, radius)
	}
	hexes := hex.Range(hex.Origin, radius)
	g := &Grid{
		layout: layout,
		radius: radius,
		cells:  make([]*Cell, 0, len(hexes)),
		byKey:  make(map[hex.Cube]*Cell, len(hexes)),
	}
	for _, h := range hexes {
		c := newCell(layout, h)
		g.cells = append(g.cells, c)
		g.byKey[h] = c
	}
	return g, nil
}

func newCell(layout hex.Layout, h hex.Cube) *Cell {
	c := &Cell{
		Hex:     h,
		Key:     h.Key(),
		Center:  layout.HexToPixel(h),
		Corners: layout.Corners(h),
	}
	c.Border = make([]float32, 0, 6*2*3)
	for i := 0; i < 6; i++ {
		a, b := c.Corners[i], c.Corners[(i+1)%6]
		c.Border = append(c.Border,
			float32(a.X), 0, float32(a.Y),
			float32(b.X), 0, float32(b.Y))
	}
	c.Fill = make([]float32, 0, 4*3*3)
	for i := 1; i < 5; i++ {
		for _, p := range []v2.Vec{c.Corners[0], c.Corners[i], c.Corners[i+1]} {
			c.Fill = append(c.Fill, float32(p.X), 0, float32(p.Y))
		}
	}
	return c
}

// Layout returns the layout the grid was built with.
func (g *Grid) Layout() hex.Layout { return g.layout }

// Radius returns the grid radius.
func (g *Grid) Radius() int { return g.radius }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells returns the cells in range order. The slice must not be modified.
func (g *Grid) Cells() []*Cell { return g.cells }

// Cell looks up the cell at h.
func (g *Grid) Cell(h hex.Cube) (*Cell, bool) {
	c, ok := g.byKey[h]
	return c, ok
}

// Contains reports whether h lies on the lattice.
func (g *Grid) Contains(h hex.Cube) bool {
	_, ok := g.byKey[h]
	return ok
}

// HitTest returns the cell containing world point p. Points outside the
// lattice report false.
func (g *Grid) HitTest(p v2.Vec) (*Cell, bool) {
	return g.Cell(g.layout.PixelToHex(p))
}
