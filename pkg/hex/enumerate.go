package hex

// Ring returns the cells at exactly distance k from center. For k == 0 the
// result is {center}; otherwise it holds 6k cells, starting k steps out in
// direction 4 and walking the six sides in direction order.
func Ring(center Cube, k int) []Cube {
	if k <= 0 {
		return []Cube{center}
	}
	out := make([]Cube, 0, 6*k)
	h := center.Add(Direction(4).Scale(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			out = append(out, h)
			h = h.Neighbor(side)
		}
	}
	return out
}

// Range returns every cell within distance n of center, 3n²+3n+1 in total,
// ordered by q then r.
func Range(center Cube, n int) []Cube {
	if n < 0 {
		return nil
	}
	out := make([]Cube, 0, 3*n*n+3*n+1)
	for q := -n; q <= n; q++ {
		lo, hi := max(-n, -q-n), min(n, -q+n)
		for r := lo; r <= hi; r++ {
			out = append(out, center.Add(Axial(q, r)))
		}
	}
	return out
}

// Spiral returns center followed by rings 1..n.
func Spiral(center Cube, n int) []Cube {
	if n < 0 {
		return nil
	}
	out := make([]Cube, 0, 3*n*n+3*n+1)
	out = append(out, center)
	for k := 1; k <= n; k++ {
		out = append(out, Ring(center, k)...)
	}
	return out
}
