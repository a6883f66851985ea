package tree

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Gizmo is the drag handle a picked node is attached to.
type Gizmo interface {
	Attach(n *Node)
	Detach()
	Attached() *Node
}

// Handle is a Gizmo with no visuals of its own.
type Handle struct {
	node *Node
}

func (h *Handle) Attach(n *Node)  { h.node = n }
func (h *Handle) Detach()         { h.node = nil }
func (h *Handle) Attached() *Node { return h.node }

// NodeRef names a node within the tree shown for Key.
type NodeRef struct {
	Key  string
	Node *Node
}

type dragState struct {
	ref   NodeRef
	lockY float64
}

// PickNode returns the node whose label covers ground point p, seen from
// above. Roots and labels not yet scaled in are never picked. When labels
// overlap the highest one wins.
func (s *System) PickNode(p v2.Vec) (NodeRef, bool) {
	var best NodeRef
	found := false
	for _, key := range s.Keys() {
		for _, n := range s.trees[key].nodes {
			if n.IsRoot() || n.Anchor == nil {
				continue
			}
			a := n.Anchor
			if a.Scale.X <= 0 || a.Scale.Y <= 0 {
				continue
			}
			if abs(p.X-a.Position.X) > a.Scale.X/2 || abs(p.Y-a.Position.Z) > a.Scale.Y/2 {
				continue
			}
			if !found || a.Position.Y > best.Node.Anchor.Position.Y {
				best = NodeRef{Key: key, Node: n}
				found = true
			}
		}
	}
	return best, found
}

// BeginDrag attaches the gizmo to ref's node and pins it at its current
// height. A node still held from an unfinished drag is released first.
func (s *System) BeginDrag(ref NodeRef) {
	if ref.Node == nil || ref.Node.IsRoot() {
		return
	}
	s.EndDrag()
	s.gizmo.Attach(ref.Node)
	ref.Node.Pinned = true
	ref.Node.Velocity = v3.Vec{}
	s.drag = &dragState{ref: ref, lockY: ref.Node.Position().Y}
}

// DragTo moves the dragged node over ground point p. Its height stays
// where the drag began.
func (s *System) DragTo(p v2.Vec) {
	if s.drag == nil || s.drag.ref.Node.Anchor == nil {
		return
	}
	a := s.drag.ref.Node.Anchor
	a.Position.X = p.X
	a.Position.Y = s.drag.lockY
	a.Position.Z = p.Y
}

// EndDrag releases the dragged node back to physics with no velocity. The
// gizmo stays attached until another node is grabbed or the tree goes.
func (s *System) EndDrag() {
	if s.drag == nil {
		return
	}
	n := s.drag.ref.Node
	n.Pinned = false
	n.Velocity = v3.Vec{}
	s.drag = nil
}

// Dragging returns the node being dragged.
func (s *System) Dragging() (NodeRef, bool) {
	if s.drag == nil {
		return NodeRef{}, false
	}
	return s.drag.ref, true
}

// Gizmo returns the system's drag handle.
func (s *System) Gizmo() Gizmo {
	return s.gizmo
}

// Grab picks the node at p and starts dragging it.
func (s *System) Grab(p v2.Vec) bool {
	ref, ok := s.PickNode(p)
	if !ok {
		return false
	}
	s.BeginDrag(ref)
	return true
}

// Drag moves the grabbed node.
func (s *System) Drag(p v2.Vec) { s.DragTo(p) }

// Release ends the drag.
func (s *System) Release() { s.EndDrag() }

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
