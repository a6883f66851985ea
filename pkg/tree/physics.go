package tree

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Step advances the tree's physics by dt seconds. Every unpinned node feels
// a constant upward pull, inverse-square repulsion from every other node
// and a spring toward its parent whose rest length grows with depth.
// Repulsion uses positions from the start of the step; the spring follows
// the parent's current position. Step has no randomness: equal inputs give
// equal outputs.
func (t *Tree) Step(dt float64) {
	p := t.Physics
	snapshot := make([]v3.Vec, len(t.nodes))
	for i, n := range t.nodes {
		snapshot[i] = n.Position()
	}

	for i, n := range t.nodes {
		if n.Pinned {
			continue
		}
		pos := n.Position()
		force := v3.Vec{X: 0, Y: p.Upward, Z: 0}

		for j := range t.nodes {
			if i == j {
				continue
			}
			dir := pos.Sub(snapshot[j])
			d2 := math.Max(p.MinDist2, dir.Dot(dir))
			force = force.Add(normalize(dir).MulScalar(p.Repulsion / d2))
		}

		if parent, ok := t.byID[n.ParentID]; ok {
			dir := parent.Position().Sub(pos)
			dist := dir.Length()
			if dist == 0 {
				dist = 0.0001
			}
			rest := p.RestLength + float64(n.Depth)*p.RestPerDepth
			force = force.Add(normalize(dir).MulScalar((dist - rest) * p.Spring))
		}

		mass := n.Mass
		if mass <= 0 {
			mass = 1
		}
		n.Velocity = n.Velocity.Add(force.MulScalar(dt / mass)).MulScalar(p.Damping)
		n.Anchor.Position = pos.Add(n.Velocity.MulScalar(dt))
	}
}

// normalize returns v scaled to unit length, or zero for a zero vector.
func normalize(v v3.Vec) v3.Vec {
	l := v.Length()
	if l == 0 {
		return v3.Vec{}
	}
	return v.MulScalar(1 / l)
}

// BezierPoints fills dst with a quadratic curve from p0 to p1 and returns
// it. The control point sits on the vertical through p1 at a height just
// above p0's, kept at least 0.1 below p1, so the curve leaves the parent
// almost level and meets the child almost vertically. len(dst) samples are
// taken; dst must hold at least two points.
func BezierPoints(p0, p1 v3.Vec, dst []v3.Vec) []v3.Vec {
	ctrlY := math.Min(p0.Y+(p1.Y-p0.Y)*0.1, p1.Y-0.1)
	ctrl := v3.Vec{X: p1.X, Y: ctrlY, Z: p1.Z}
	segments := float64(len(dst) - 1)
	for i := range dst {
		s := float64(i) / segments
		a := lerp(p0, ctrl, s)
		b := lerp(ctrl, p1, s)
		dst[i] = lerp(a, b, s)
	}
	return dst
}

func lerp(a, b v3.Vec, t float64) v3.Vec {
	return a.Add(b.Sub(a).MulScalar(t))
}

// RebuildEdges recomputes every edge curve from current node positions,
// reusing each edge's point buffer.
func (t *Tree) RebuildEdges() {
	for _, e := range t.edges {
		from, ok1 := t.byID[e.ParentID]
		to, ok2 := t.byID[e.ChildID]
		if !ok1 || !ok2 || len(e.Points) < 2 {
			continue
		}
		BezierPoints(from.Position(), to.Position(), e.Points)
	}
}
