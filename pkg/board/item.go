package board

import (
	"math"
	"unicode/utf8"

	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/chazu/hexgarden/pkg/kernel"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Anchor is the floating label above an item. A shown tree's root node
// holds the same pointer, so moving or renaming the label moves the root.
type Anchor struct {
	Position v3.Vec `json:"position"`
	Scale    v2.Vec `json:"scale"`
	Text     string `json:"text"`
	Visible  bool   `json:"visible"`
}

// SetText updates the label text and its world size. Empty text hides it.
func (a *Anchor) SetText(text string) {
	a.Text = text
	a.Visible = text != ""
	if a.Visible {
		a.Scale = LabelSize(text)
	} else {
		a.Scale = v2.Vec{}
	}
}

// Item is a placed cell.
type Item struct {
	Hex          hex.Cube     `json:"hex"`
	Key          string       `json:"key"`
	State        State        `json:"state"`
	Label        string       `json:"label,omitempty"`
	FunctionName string       `json:"functionName,omitempty"`
	Description  string       `json:"description,omitempty"`
	Files        []string     `json:"files,omitempty"`
	Mesh         *kernel.Mesh `json:"-"`
	Anchor       *Anchor      `json:"anchor"`
}

// Activated reports whether the item has a function name.
func (it *Item) Activated() bool {
	return it.State == Activated
}

// Visual returns the prism variant for the item.
func (it *Item) Visual() Visual {
	return PrismVisual(it.State)
}

// Label sprite metrics, in canvas pixels at the label's pixel ratio.
const (
	labelWorldWidth = 5.8
	labelMaxHeight  = 1.6
	labelFontPx     = 100.0
	labelCharPx     = 0.56 * labelFontPx
	labelPadding    = 40.0
	labelGap        = 50.0
	labelAccent     = 20.0
)

// LabelSize returns the world size of a label showing text. Labels are
// 5.8 units wide unless that would make them taller than 1.6, in which case
// both sides shrink to keep the aspect ratio.
func LabelSize(text string) v2.Vec {
	textW := math.Ceil(float64(utf8.RuneCountInString(text)) * labelCharPx)
	textH := math.Ceil(labelFontPx * 1.4)
	w := math.Ceil(labelAccent + labelGap + textW + labelPadding)
	h := math.Ceil(textH + labelPadding*2)

	width := labelWorldWidth
	height := width * h / w
	if height > labelMaxHeight {
		width *= labelMaxHeight / height
		height = labelMaxHeight
	}
	return v2.Vec{X: width, Y: height}
}
