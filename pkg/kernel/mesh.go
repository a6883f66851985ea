package kernel

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Key      string    `json:"key"`      // hex key of the item this mesh belongs to
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Bounds returns the axis-aligned bounds of the vertices. An empty mesh
// reports zero bounds.
func (m *Mesh) Bounds() (min, max [3]float64) {
	if m.IsEmpty() {
		return min, max
	}
	for i := 0; i < 3; i++ {
		min[i] = float64(m.Vertices[i])
		max[i] = float64(m.Vertices[i])
	}
	for v := 3; v+2 < len(m.Vertices); v += 3 {
		for i := 0; i < 3; i++ {
			c := float64(m.Vertices[v+i])
			if c < min[i] {
				min[i] = c
			}
			if c > max[i] {
				max[i] = c
			}
		}
	}
	return min, max
}

// Translated returns a copy of the mesh moved by (dx, dy, dz). Normals and
// indices are shared with the receiver since translation leaves them intact.
func (m *Mesh) Translated(dx, dy, dz float64) *Mesh {
	out := &Mesh{
		Vertices: make([]float32, len(m.Vertices)),
		Normals:  m.Normals,
		Indices:  m.Indices,
		Key:      m.Key,
	}
	d := [3]float32{float32(dx), float32(dy), float32(dz)}
	for i, v := range m.Vertices {
		out.Vertices[i] = v + d[i%3]
	}
	return out
}

// Release drops the mesh buffers. A released mesh is empty.
func (m *Mesh) Release() {
	m.Vertices = nil
	m.Normals = nil
	m.Indices = nil
}
