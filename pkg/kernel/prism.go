package kernel

import (
	"fmt"

	"github.com/chazu/hexgarden/pkg/hex"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// PrismOptions shapes the bevelled prism placed on a cell.
type PrismOptions struct {
	Shrink      float64 // outline scale about the cell centre
	Height      float64 // straight extrusion height
	Bevel       float64 // edge rounding
	LabelOffset float64 // label anchor height above the prism top
}

// DefaultPrismOptions returns the standard prism proportions.
func DefaultPrismOptions() PrismOptions {
	return PrismOptions{
		Shrink:      0.96,
		Height:      0.1,
		Bevel:       0.16,
		LabelOffset: 0.16,
	}
}

// PrismTemplate meshes one prism at the origin cell and stamps translated
// copies for every other cell, since all cells of a layout share a shape.
type PrismTemplate struct {
	layout hex.Layout
	mesh   *Mesh
	centre v3.Vec // template anchor relative to the origin cell centre
}

// NewPrismTemplate builds the template mesh for layout l.
func NewPrismTemplate(k Kernel, l hex.Layout, opts PrismOptions) (*PrismTemplate, error) {
	origin := l.HexToPixel(hex.Origin)
	corners := l.Corners(hex.Origin)
	outline := make([]v2.Vec, 0, len(corners))
	for _, c := range corners {
		outline = append(outline, v2.Vec{
			X: (c.X - origin.X) * opts.Shrink,
			Y: (c.Y - origin.Y) * opts.Shrink,
		})
	}

	solid, err := k.Prism(outline, opts.Height+2*opts.Bevel, opts.Bevel)
	if err != nil {
		return nil, fmt.Errorf("kernel: prism: %w", err)
	}
	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("kernel: prism mesh: %w", err)
	}

	_, max := mesh.Bounds()
	return &PrismTemplate{
		layout: l,
		mesh:   mesh,
		centre: v3.Vec{X: 0, Y: max[1] + opts.LabelOffset, Z: 0},
	}, nil
}

// At returns the prism mesh for h together with its label anchor position.
func (p *PrismTemplate) At(h hex.Cube) (*Mesh, v3.Vec) {
	c := p.layout.HexToPixel(h)
	m := p.mesh.Translated(c.X, 0, c.Y)
	m.Key = h.Key()
	return m, v3.Vec{X: c.X, Y: p.centre.Y, Z: c.Y}
}

// Template exposes the untranslated mesh.
func (p *PrismTemplate) Template() *Mesh {
	return p.mesh
}
