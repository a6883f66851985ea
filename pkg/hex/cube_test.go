package hex_test

import (
	"testing"

	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvariantViolation(t *testing.T) {
	_, err := hex.New(1, 1, 1)
	require.ErrorIs(t, err, hex.ErrInvariant)

	c, err := hex.New(3, -1, -2)
	require.NoError(t, err)
	assert.Equal(t, hex.Cube{Q: 3, R: -1, S: -2}, c)

	assert.Panics(t, func() { hex.MustNew(0, 0, 1) })
}

func TestArithmetic(t *testing.T) {
	a := hex.MustNew(1, -3, 2)
	b := hex.MustNew(3, -7, 4)

	assert.Equal(t, hex.MustNew(4, -10, 6), a.Add(b))
	assert.Equal(t, hex.MustNew(-2, 4, -2), a.Sub(b))
	assert.Equal(t, hex.MustNew(2, -6, 4), a.Scale(2))
	assert.True(t, a.Scale(-5).Valid())
}

func TestRotation(t *testing.T) {
	a := hex.MustNew(1, -3, 2)
	assert.Equal(t, hex.MustNew(-2, -1, 3), a.RotateLeft())
	assert.Equal(t, hex.MustNew(3, -2, -1), a.RotateRight())

	r := a
	for i := 0; i < 6; i++ {
		r = r.RotateLeft()
		assert.True(t, r.Valid())
		assert.Equal(t, a.Length(), r.Length())
	}
	assert.Equal(t, a, r, "six left rotations return to the start")
	assert.Equal(t, a, a.RotateLeft().RotateRight())
}

func TestNeighbors(t *testing.T) {
	c := hex.MustNew(1, -2, 1)
	assert.Equal(t, hex.MustNew(1, -3, 2), c.Neighbor(2))
	assert.Equal(t, hex.MustNew(-1, -1, 2), c.DiagonalNeighbor(3))

	for dir := 0; dir < 6; dir++ {
		assert.Equal(t, 1, hex.Distance(c, c.Neighbor(dir)))
		assert.Equal(t, 2, hex.Distance(c, c.DiagonalNeighbor(dir)))
	}
	assert.Equal(t, c.Neighbor(1), c.Neighbor(7), "directions wrap modulo 6")
	assert.Equal(t, c.Neighbor(5), c.Neighbor(-1))
	assert.Len(t, c.Neighbors(), 6)
}

func TestDistance(t *testing.T) {
	cells := hex.Range(hex.Origin, 3)
	for _, a := range cells {
		assert.Zero(t, hex.Distance(a, a))
		for _, b := range cells {
			d := hex.Distance(a, b)
			assert.Equal(t, d, hex.Distance(b, a))
			for _, c := range []hex.Cube{hex.Origin, hex.MustNew(2, -1, -1)} {
				assert.LessOrEqual(t, d, hex.Distance(a, c)+hex.Distance(c, b))
			}
		}
	}
	assert.Equal(t, 7, hex.Distance(hex.MustNew(3, -7, 4), hex.Origin))
}

func TestKeyRoundTrip(t *testing.T) {
	for _, c := range hex.Range(hex.MustNew(5, -5, 0), 2) {
		got, err := hex.ParseKey(c.Key())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	assert.Equal(t, "-1,0,1", hex.MustNew(-1, 0, 1).Key())

	cases := []struct {
		key string
		err error
	}{
		{"1,2", hex.ErrKey},
		{"a,b,c", hex.ErrKey},
		{"1,1,1", hex.ErrInvariant},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			_, err := hex.ParseKey(tc.key)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestRoundAndLine(t *testing.T) {
	a := hex.Fractional{Q: 0, R: 0, S: 0}
	b := hex.Fractional{Q: 1, R: -1, S: 0}
	far := hex.Fractional{Q: 10, R: -20, S: 10}

	assert.Equal(t, hex.MustNew(5, -10, 5), hex.Lerp(a, far, 0.5).Round())
	assert.Equal(t, a.Round(), hex.Lerp(a, b, 0.499).Round())
	assert.Equal(t, b.Round(), hex.Lerp(a, b, 0.501).Round())
	assert.True(t, hex.Lerp(a, far, 0.37).Round().Valid())

	line := hex.LineDraw(hex.Origin, hex.MustNew(1, -5, 4))
	require.Len(t, line, 6)
	assert.Equal(t, hex.Origin, line[0])
	assert.Equal(t, hex.MustNew(1, -5, 4), line[5])
	for i := 1; i < len(line); i++ {
		assert.Equal(t, 1, hex.Distance(line[i-1], line[i]))
	}
}
