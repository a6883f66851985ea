package sdfx

import (
	"math"
	"testing"

	"github.com/chazu/hexgarden/pkg/config"
	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/chazu/hexgarden/pkg/kernel"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexOutline(size float64) []v2.Vec {
	l := hex.NewLayout(hex.Flat, v2.Vec{X: size, Y: size}, v2.Vec{})
	c := l.Corners(hex.Origin)
	return c[:]
}

func TestPrism(t *testing.T) {
	k := New()
	s, err := k.Prism(hexOutline(2.5), 0.42, 0.16)
	require.NoError(t, err)

	min, max := s.BoundingBox()
	assert.InDelta(t, 0, min[1], 0.05, "base rests on the ground plane")
	assert.InDelta(t, 0.42, max[1], 0.05)
	// Rounding grows the footprint outward by the bevel.
	assert.InDelta(t, 2.5+0.16, max[0], 0.05)
	assert.InDelta(t, -2.5-0.16, min[0], 0.05)
	assert.InDelta(t, 2.5*math.Sqrt(3)/2+0.16, max[2], 0.05)

	m, err := k.ToMesh(s)
	require.NoError(t, err)
	assert.False(t, m.IsEmpty())
	assert.Equal(t, m.VertexCount(), m.TriangleCount()*3)
	assert.Len(t, m.Normals, len(m.Vertices))
}

func TestPrismRejectsDegenerateOutline(t *testing.T) {
	k := New()
	_, err := k.Prism([]v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1, 0.1)
	assert.Error(t, err)
}

func TestTranslate(t *testing.T) {
	k := New()
	s, err := k.Prism(hexOutline(1), 0.5, 0.1)
	require.NoError(t, err)

	moved := k.Translate(s, 10, 0, -4)
	min, max := moved.BoundingBox()
	assert.InDelta(t, 10, (min[0]+max[0])/2, 0.05)
	assert.InDelta(t, -4, (min[2]+max[2])/2, 0.05)
}

func TestPrismTemplateWithSdfx(t *testing.T) {
	l := hex.NewLayout(hex.Flat, v2.Vec{X: 2.5, Y: 2.5}, v2.Vec{})
	tmpl, err := kernel.NewPrismTemplate(WithCells(32), l, kernel.DefaultPrismOptions())
	require.NoError(t, err)

	m, anchor := tmpl.At(hex.MustNew(1, 0, -1))
	assert.False(t, m.IsEmpty())
	_, max := m.Bounds()
	assert.Greater(t, anchor.Y, max[1])
}

func TestDefaultPrismHasFiniteNormals(t *testing.T) {
	cfg := config.Default()
	l, err := cfg.HexLayout()
	require.NoError(t, err)
	tmpl, err := kernel.NewPrismTemplate(WithCells(cfg.Prism.MeshCells), l, cfg.PrismOptions())
	require.NoError(t, err)

	m := tmpl.Template()
	require.Len(t, m.Normals, len(m.Vertices))
	assert.Equal(t, m.VertexCount(), len(m.Indices))
	for i, n := range m.Normals {
		require.False(t, math.IsNaN(float64(n)), "normal component %d", i)
	}
	for i, idx := range m.Indices {
		require.Equal(t, uint32(i), idx)
	}
}
