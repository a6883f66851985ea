// Package hex implements cube-coordinate algebra for hexagonal lattices and
// the affine projection between the lattice and continuous world space.
//
// A cell is a Cube (q, r, s) with q+r+s == 0. Layouts map cubes to points in
// the plane for one of two orientations (flat-top, pointy-top). All values
// are immutable; every operation returns a new value.
package hex
