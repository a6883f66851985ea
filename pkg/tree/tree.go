// Package tree grows an animated, force-directed node tree above an
// activated item.
//
// A System owns at most one Tree per hex key. Showing a tree spawns two
// levels of procedurally named children around the item's label, reveals
// the connecting edges in depth-ordered waves, then scales each child in.
// Every frame the physics integrator relaxes child positions and the edge
// curves are rebuilt from the result. Trees are ephemeral: disposing one
// drops its nodes, edges and pending animation in one go.
package tree

import (
	"math"

	"github.com/chazu/hexgarden/pkg/board"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// RootID is the id of every tree's root node.
const RootID = "root"

// Node is a labelled point of a tree. The root node's Anchor is the item's
// own label anchor.
type Node struct {
	ID          string
	Name        string
	Depth       int
	Pinned      bool
	Velocity    v3.Vec
	Mass        float64
	ParentID    string
	Anchor      *board.Anchor
	TargetScale v2.Vec
}

// Position returns the node's current world position.
func (n *Node) Position() v3.Vec {
	return n.Anchor.Position
}

// IsRoot reports whether n is the tree root.
func (n *Node) IsRoot() bool {
	return n.ParentID == ""
}

// Edge joins a parent to a child with a curve sampled at a fixed number of
// points. Points is allocated once when the edge is created.
type Edge struct {
	ParentID string
	ChildID  string
	Points   []v3.Vec
	Progress float64
	Started  bool
}

// Visible returns the number of leading points to draw: none before growth
// starts, then floor(total * progress) but never fewer than 2.
func (e *Edge) Visible() int {
	if !e.Started {
		return 0
	}
	n := int(math.Floor(float64(len(e.Points)) * e.Progress))
	return min(len(e.Points), max(2, n))
}

// Tree is the node graph shown for one activated item.
type Tree struct {
	Key     string
	Physics Physics

	nodes    []*Node
	byID     map[string]*Node
	edges    []*Edge
	timeline *Timeline
}

func newTree(key string, physics Physics) *Tree {
	return &Tree{
		Key:      key,
		Physics:  physics,
		byID:     make(map[string]*Node),
		timeline: &Timeline{},
	}
}

func (t *Tree) addNode(n *Node) {
	t.nodes = append(t.nodes, n)
	t.byID[n.ID] = n
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.byID[RootID]
}

// Node looks up a node by id.
func (t *Tree) Node(id string) (*Node, bool) {
	n, ok := t.byID[id]
	return n, ok
}

// Nodes returns the nodes in creation order, root first.
func (t *Tree) Nodes() []*Node {
	return t.nodes
}

// Edges returns the edges in creation order.
func (t *Tree) Edges() []*Edge {
	return t.edges
}

// Timeline returns the tree's animation timeline.
func (t *Tree) Timeline() *Timeline {
	return t.timeline
}

// Contains reports whether n belongs to t.
func (t *Tree) Contains(n *Node) bool {
	if n == nil {
		return false
	}
	m, ok := t.byID[n.ID]
	return ok && m == n
}

// release drops every node except the root, whose anchor belongs to the
// board.
func (t *Tree) release() {
	for _, n := range t.nodes {
		if n.IsRoot() {
			continue
		}
		n.Anchor = nil
	}
	for _, e := range t.edges {
		e.Points = nil
	}
	t.nodes = nil
	t.byID = nil
	t.edges = nil
	t.timeline = nil
}
