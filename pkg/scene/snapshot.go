package scene

import (
	"github.com/chazu/hexgarden/pkg/board"
	"github.com/chazu/hexgarden/pkg/grid"
	"github.com/chazu/hexgarden/pkg/tree"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// CellView is the render state of a grid cell.
type CellView struct {
	Key     string       `json:"key"`
	Corners [6]v2.Vec    `json:"corners"`
	Visual  board.Visual `json:"visual"`
	Fill    grid.Style   `json:"fill"`
}

// ItemView is the render state of a placed item. Prism geometry is not
// carried per frame; every item draws the shared template at Centre.
type ItemView struct {
	*board.Item
	Centre v2.Vec       `json:"centre"`
	Visual board.Visual `json:"visual"`
	Style  grid.Style   `json:"style"`
}

// CameraView is the camera state a renderer needs to project the ground.
type CameraView struct {
	Target      v2.Vec  `json:"target"`
	Zoom        float64 `json:"zoom"`
	FrustumSize float64 `json:"frustumSize"`
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Frame  uint64          `json:"frame"`
	Camera CameraView      `json:"camera"`
	Border grid.Style      `json:"border"`
	Hover  string          `json:"hover,omitempty"`
	Cells  []CellView      `json:"cells,omitempty"`
	Items  []ItemView      `json:"items"`
	Trees  []tree.TreeView `json:"trees"`
}

// Snapshot copies the current render state. Cells are left out; they never
// change and are available from Cells.
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:  s.frames,
		Camera: CameraView{Target: s.Camera.Target, Zoom: s.Camera.Zoom, FrustumSize: s.Camera.FrustumSize},
		Border: grid.BorderStyle,
		Items:  make([]ItemView, 0, s.Store.Len()),
		Trees:  s.Trees.Snapshot(),
	}
	if c, ok := s.Controller.Hovered(); ok {
		snap.Hover = c.Key
	}
	for _, it := range s.Store.Items() {
		v := it.Visual()
		snap.Items = append(snap.Items, ItemView{Item: it, Centre: s.Layout.HexToPixel(it.Hex), Visual: v, Style: v.Style()})
	}
	return snap
}

// Cells returns the render state of every grid cell.
func (s *Scene) Cells() []CellView {
	out := make([]CellView, 0, s.Grid.Len())
	for _, c := range s.Grid.Cells() {
		v := s.Controller.FillVisual(c)
		out = append(out, CellView{Key: c.Key, Corners: c.Corners, Visual: v, Fill: v.Style()})
	}
	return out
}
