package hex

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Orientation holds the forward and inverse 2x2 projection matrices and the
// angle of corner 0, in sixths of a turn.
type Orientation struct {
	Name           string
	F0, F1, F2, F3 float64
	B0, B1, B2, B3 float64
	StartAngle     float64
}

var sqrt3 = math.Sqrt(3)

// Flat is the flat-top orientation.
var Flat = Orientation{
	Name: "flat",
	F0:   3.0 / 2.0, F1: 0, F2: sqrt3 / 2, F3: sqrt3,
	B0: 2.0 / 3.0, B1: 0, B2: -1.0 / 3.0, B3: sqrt3 / 3,
	StartAngle: 0,
}

// Pointy is the pointy-top orientation.
var Pointy = Orientation{
	Name: "pointy",
	F0:   sqrt3, F1: sqrt3 / 2, F2: 0, F3: 3.0 / 2.0,
	B0: sqrt3 / 3, B1: -1.0 / 3.0, B2: 0, B3: 2.0 / 3.0,
	StartAngle: 0.5,
}

// OrientationByName returns the preset named "flat" or "pointy".
func OrientationByName(name string) (Orientation, error) {
	switch name {
	case "flat", "":
		return Flat, nil
	case "pointy":
		return Pointy, nil
	}
	return Orientation{}, fmt.Errorf("hex: unknown orientation %q", name)
}

// Layout is the immutable mapping between cells and world points.
type Layout struct {
	Orientation Orientation
	Size        v2.Vec // per-axis cell radius
	Origin      v2.Vec // world position of the origin cell's centre
}

// NewLayout returns a layout with the given orientation, cell size and origin.
func NewLayout(o Orientation, size, origin v2.Vec) Layout {
	return Layout{Orientation: o, Size: size, Origin: origin}
}

// HexToPixel returns the centre of h.
func (l Layout) HexToPixel(h Cube) v2.Vec {
	o := l.Orientation
	q, r := float64(h.Q), float64(h.R)
	return v2.Vec{
		X: (o.F0*q+o.F1*r)*l.Size.X + l.Origin.X,
		Y: (o.F2*q+o.F3*r)*l.Size.Y + l.Origin.Y,
	}
}

// PixelToFractional applies the inverse projection without rounding.
func (l Layout) PixelToFractional(p v2.Vec) Fractional {
	o := l.Orientation
	x := (p.X - l.Origin.X) / l.Size.X
	y := (p.Y - l.Origin.Y) / l.Size.Y
	q := o.B0*x + o.B1*y
	r := o.B2*x + o.B3*y
	return Fractional{Q: q, R: r, S: -q - r}
}

// PixelToHex returns the cell containing p.
func (l Layout) PixelToHex(p v2.Vec) Cube {
	return l.PixelToFractional(p).Round()
}

// CornerOffset returns the offset of corner i from a cell centre.
func (l Layout) CornerOffset(i int) v2.Vec {
	angle := 2 * math.Pi * (l.Orientation.StartAngle - float64(i)) / 6
	return v2.Vec{X: l.Size.X * math.Cos(angle), Y: l.Size.Y * math.Sin(angle)}
}

// Corners returns the six polygon corners of h, 60° apart.
func (l Layout) Corners(h Cube) [6]v2.Vec {
	var out [6]v2.Vec
	c := l.HexToPixel(h)
	for i := range out {
		off := l.CornerOffset(i)
		out[i] = v2.Vec{X: c.X + off.X, Y: c.Y + off.Y}
	}
	return out
}
