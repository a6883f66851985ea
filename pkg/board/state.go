package board

import "github.com/chazu/hexgarden/pkg/grid"

// State is the lifecycle state of a cell.
type State int

const (
	Empty State = iota
	Inert
	Activated
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Inert:
		return "inert"
	case Activated:
		return "activated"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Visual is what a cell surface looks like. Cell fills are Empty or
// Hovered; prisms are Inert or Activated.
type Visual int

const (
	VisualEmpty Visual = iota
	VisualHovered
	VisualInert
	VisualActivated
)

var (
	inertStyle     = grid.Style{Color: 0x9aa0a6, Opacity: 0.5, Transmission: 0.85}
	activatedStyle = grid.Style{Color: 0x50c878, Opacity: 0.5, Transmission: 1.0}
)

// Style derives the rendering parameters for v.
func (v Visual) Style() grid.Style {
	switch v {
	case VisualHovered:
		return grid.HoverFill
	case VisualInert:
		return inertStyle
	case VisualActivated:
		return activatedStyle
	default:
		return grid.DefaultFill
	}
}

func (v Visual) String() string {
	switch v {
	case VisualHovered:
		return "hovered"
	case VisualInert:
		return "inert"
	case VisualActivated:
		return "activated"
	default:
		return "empty"
	}
}

// MarshalText encodes the visual by name.
func (v Visual) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// FillVisual is the fill variant for a cell.
func FillVisual(hovered bool) Visual {
	if hovered {
		return VisualHovered
	}
	return VisualEmpty
}

// PrismVisual is the prism variant for an item state.
func PrismVisual(s State) Visual {
	if s == Activated {
		return VisualActivated
	}
	return VisualInert
}
