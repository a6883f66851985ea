package hex

import (
	"fmt"
	"strconv"
	"strings"
)

// Cube is a hexagonal cell in cube coordinates. The zero value is the origin.
type Cube struct {
	Q int `json:"q"`
	R int `json:"r"`
	S int `json:"s"`
}

// Origin is the centre cell.
var Origin = Cube{}

// New returns the cube (q, r, s), or ErrInvariant when q+r+s != 0.
func New(q, r, s int) (Cube, error) {
	if q+r+s != 0 {
		return Cube{}, fmt.Errorf("%w: (%d, %d, %d)", ErrInvariant, q, r, s)
	}
	return Cube{Q: q, R: r, S: s}, nil
}

// MustNew is like New but panics on an invariant violation.
func MustNew(q, r, s int) Cube {
	c, err := New(q, r, s)
	if err != nil {
		panic(err)
	}
	return c
}

// Axial returns the cube for axial coordinates (q, r); s is derived.
func Axial(q, r int) Cube {
	return Cube{Q: q, R: r, S: -q - r}
}

var directions = [6]Cube{
	{1, 0, -1}, {1, -1, 0}, {0, -1, 1},
	{-1, 0, 1}, {-1, 1, 0}, {0, 1, -1},
}

var diagonals = [6]Cube{
	{2, -1, -1}, {1, -2, 1}, {-1, -1, 2},
	{-2, 1, 1}, {-1, 2, -1}, {1, 1, -2},
}

// Direction returns the unit offset for dir, taken modulo 6.
func Direction(dir int) Cube {
	return directions[mod6(dir)]
}

// Diagonal returns the diagonal offset for dir, taken modulo 6.
func Diagonal(dir int) Cube {
	return diagonals[mod6(dir)]
}

func mod6(i int) int {
	return ((i % 6) + 6) % 6
}

// Add returns a + b.
func (a Cube) Add(b Cube) Cube {
	return Cube{a.Q + b.Q, a.R + b.R, a.S + b.S}
}

// Sub returns a - b.
func (a Cube) Sub(b Cube) Cube {
	return Cube{a.Q - b.Q, a.R - b.R, a.S - b.S}
}

// Scale multiplies every component by k.
func (a Cube) Scale(k int) Cube {
	return Cube{a.Q * k, a.R * k, a.S * k}
}

// RotateLeft rotates a by 60° counter-clockwise about the origin.
func (a Cube) RotateLeft() Cube {
	return Cube{-a.S, -a.Q, -a.R}
}

// RotateRight rotates a by 60° clockwise about the origin.
func (a Cube) RotateRight() Cube {
	return Cube{-a.R, -a.S, -a.Q}
}

// Neighbor returns the adjacent cell in direction dir.
func (a Cube) Neighbor(dir int) Cube {
	return a.Add(Direction(dir))
}

// DiagonalNeighbor returns the cell across the vertex in direction dir.
func (a Cube) DiagonalNeighbor(dir int) Cube {
	return a.Add(Diagonal(dir))
}

// Neighbors returns the six adjacent cells in direction order.
func (a Cube) Neighbors() [6]Cube {
	var out [6]Cube
	for i := range directions {
		out[i] = a.Neighbor(i)
	}
	return out
}

// Length is the distance from the origin: half the L1 norm.
func (a Cube) Length() int {
	return (abs(a.Q) + abs(a.R) + abs(a.S)) / 2
}

// Distance returns the number of steps between a and b.
func Distance(a, b Cube) int {
	return a.Sub(b).Length()
}

// Valid reports whether the invariant holds. Values built with a struct
// literal bypass New and may not satisfy it.
func (a Cube) Valid() bool {
	return a.Q+a.R+a.S == 0
}

// Key is the canonical string identity "q,r,s" used as a map key.
func (a Cube) Key() string {
	return strconv.Itoa(a.Q) + "," + strconv.Itoa(a.R) + "," + strconv.Itoa(a.S)
}

func (a Cube) String() string {
	return fmt.Sprintf("(%d, %d, %d)", a.Q, a.R, a.S)
}

// ParseKey inverts Key.
func ParseKey(key string) (Cube, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 3 {
		return Cube{}, fmt.Errorf("%w: %q", ErrKey, key)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Cube{}, fmt.Errorf("%w: %q: %v", ErrKey, key, err)
		}
		v[i] = n
	}
	return New(v[0], v[1], v[2])
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
