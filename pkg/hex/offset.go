package hex

// OffsetKind selects one of the four offset-coordinate conventions.
type OffsetKind int

const (
	EvenQ OffsetKind = iota // flat-top, even columns shoved down
	OddQ                    // flat-top, odd columns shoved down
	EvenR                   // pointy-top, even rows shoved right
	OddR                    // pointy-top, odd rows shoved right
)

func (k OffsetKind) String() string {
	switch k {
	case EvenQ:
		return "even-q"
	case OddQ:
		return "odd-q"
	case EvenR:
		return "even-r"
	case OddR:
		return "odd-r"
	default:
		return "unknown"
	}
}

func (k OffsetKind) sign() int {
	if k == EvenQ || k == EvenR {
		return 1
	}
	return -1
}

func (k OffsetKind) columnar() bool {
	return k == EvenQ || k == OddQ
}

// OffsetCoord is a (col, row) address in a rectangular offset layout.
type OffsetCoord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// ToOffset converts a to offset coordinates under kind.
func ToOffset(kind OffsetKind, a Cube) OffsetCoord {
	off := kind.sign()
	if kind.columnar() {
		return OffsetCoord{Col: a.Q, Row: a.R + (a.Q+off*(a.Q&1))/2}
	}
	return OffsetCoord{Col: a.Q + (a.R+off*(a.R&1))/2, Row: a.R}
}

// FromOffset converts offset coordinates back to cube coordinates.
func FromOffset(kind OffsetKind, o OffsetCoord) Cube {
	off := kind.sign()
	if kind.columnar() {
		return Axial(o.Col, o.Row-(o.Col+off*(o.Col&1))/2)
	}
	return Axial(o.Col-(o.Row+off*(o.Row&1))/2, o.Row)
}

// DoubledKind selects doubled-width (R) or doubled-height (Q) coordinates.
type DoubledKind int

const (
	QDoubled DoubledKind = iota
	RDoubled
)

// DoubledCoord is a (col, row) address where one axis steps by two.
type DoubledCoord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// ToDoubled converts a to doubled coordinates.
func ToDoubled(kind DoubledKind, a Cube) DoubledCoord {
	if kind == QDoubled {
		return DoubledCoord{Col: a.Q, Row: 2*a.R + a.Q}
	}
	return DoubledCoord{Col: 2*a.Q + a.R, Row: a.R}
}

// FromDoubled converts doubled coordinates back to cube coordinates.
func FromDoubled(kind DoubledKind, d DoubledCoord) Cube {
	if kind == QDoubled {
		return Axial(d.Col, (d.Row-d.Col)/2)
	}
	return Axial((d.Col-d.Row)/2, d.Row)
}
