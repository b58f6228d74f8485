package geometry

// VertexStride is the number of float32 values per vertex in a vertex buffer:
// position (3), color (3), normal (3)
const VertexStride = 9

// Attribute offsets within one vertex, in float32 values
const (
	PositionOffset = 0
	ColorOffset    = 3
	NormalOffset   = 6
)

// VertexBuffer returns the interleaved vertex data for every triangle, three
// vertices per triangle, ready for upload as a GL array buffer
func (m *Mesh) VertexBuffer(cfg RenderConfig) []float32 {
	buf := make([]float32, 0, len(m.triangles)*3*VertexStride)
	for _, tri := range m.triangles {
		for _, v := range tri.DrawVertices(cfg) {
			buf = append(buf,
				float32(v.Point.X), float32(v.Point.Y), float32(v.Point.Z),
				float32(v.Color.X), float32(v.Color.Y), float32(v.Color.Z),
				float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z),
			)
		}
	}
	return buf
}

// VertexCount returns the number of vertices in the vertex buffer
func (m *Mesh) VertexCount() int {
	return len(m.triangles) * 3
}
