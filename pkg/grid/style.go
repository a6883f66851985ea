package grid

// Style is the colour and translucency a surface is drawn with.
type Style struct {
	Color        uint32  `json:"color"`
	Opacity      float64 `json:"opacity"`
	Transmission float64 `json:"transmission,omitempty"`
}

var (
	// DefaultFill is the near-invisible resting fill.
	DefaultFill = Style{Color: 0xffffff, Opacity: 0}
	// HoverFill highlights the cell under the pointer.
	HoverFill = Style{Color: 0xffcc00, Opacity: 0.35}
	// BorderStyle is the outline colour shared by every cell.
	BorderStyle = Style{Color: 0x999999, Opacity: 0.75}
)
