package tree

import (
	"slices"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// NodeView is the render state of a node.
type NodeView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Depth    int    `json:"depth"`
	Position v3.Vec `json:"position"`
	Scale    v2.Vec `json:"scale"`
	Pinned   bool   `json:"pinned"`
}

// EdgeView is the drawn prefix of an edge curve.
type EdgeView struct {
	ParentID string   `json:"parentId"`
	ChildID  string   `json:"childId"`
	Points   []v3.Vec `json:"points"`
}

// TreeView is the render state of one tree.
type TreeView struct {
	Key   string     `json:"key"`
	Nodes []NodeView `json:"nodes"`
	Edges []EdgeView `json:"edges"`
}

// Snapshot copies the render state of every tree, sorted by key.
func (s *System) Snapshot() []TreeView {
	out := make([]TreeView, 0, len(s.trees))
	for _, key := range s.Keys() {
		out = append(out, s.trees[key].View())
	}
	return out
}

// View copies the tree's render state.
func (t *Tree) View() TreeView {
	v := TreeView{
		Key:   t.Key,
		Nodes: make([]NodeView, 0, len(t.nodes)),
		Edges: make([]EdgeView, 0, len(t.edges)),
	}
	for _, n := range t.nodes {
		name := n.Name
		// The root shares its item's label, which renaming updates.
		if n.IsRoot() && n.Anchor.Text != "" {
			name = n.Anchor.Text
		}
		v.Nodes = append(v.Nodes, NodeView{
			ID:       n.ID,
			Name:     name,
			Depth:    n.Depth,
			Position: n.Anchor.Position,
			Scale:    n.Anchor.Scale,
			Pinned:   n.Pinned,
		})
	}
	for _, e := range t.edges {
		v.Edges = append(v.Edges, EdgeView{
			ParentID: e.ParentID,
			ChildID:  e.ChildID,
			Points:   slices.Clone(e.Points[:e.Visible()]),
		})
	}
	return v
}
