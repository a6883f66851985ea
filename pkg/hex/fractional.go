package hex

import "math"

// Fractional is a point in continuous cube space, as produced by the inverse
// layout projection or by interpolation.
type Fractional struct {
	Q, R, S float64
}

// Float converts an integer cube to fractional space.
func (a Cube) Float() Fractional {
	return Fractional{float64(a.Q), float64(a.R), float64(a.S)}
}

// Round snaps f to the nearest cell. The component with the largest rounding
// error is recomputed from the other two so the result satisfies q+r+s == 0.
func (f Fractional) Round() Cube {
	q := math.Round(f.Q)
	r := math.Round(f.R)
	s := math.Round(f.S)
	dq := math.Abs(q - f.Q)
	dr := math.Abs(r - f.R)
	ds := math.Abs(s - f.S)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Cube{int(q), int(r), int(s)}
}

// Lerp interpolates between a and b; t=0 yields a, t=1 yields b.
func Lerp(a, b Fractional, t float64) Fractional {
	return Fractional{
		Q: a.Q*(1-t) + b.Q*t,
		R: a.R*(1-t) + b.R*t,
		S: a.S*(1-t) + b.S*t,
	}
}

// LineDraw returns the cells on the straight segment from a to b, inclusive.
// Endpoints are nudged off the cell boundaries so ties round consistently.
func LineDraw(a, b Cube) []Cube {
	n := Distance(a, b)
	an := Fractional{float64(a.Q) + 1e-6, float64(a.R) + 1e-6, float64(a.S) - 2e-6}
	bn := Fractional{float64(b.Q) + 1e-6, float64(b.R) + 1e-6, float64(b.S) - 2e-6}
	step := 1.0 / math.Max(float64(n), 1)
	out := make([]Cube, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, Lerp(an, bn, step*float64(i)).Round())
	}
	return out
}
