package geometry

import (
	"github.com/df07/go-mesh-raycaster/pkg/core"
)

// parallelEpsilon is the determinant magnitude below which a ray counts as
// parallel to the triangle plane
const parallelEpsilon = 1e-8

// Vertex is a triangle corner with its own color and normal
type Vertex struct {
	Point  core.Vec3
	Color  core.Vec3
	Normal core.Vec3
}

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	Vertices   [3]Vertex
	FlatNormal core.Vec3 // Cached (v1-v0) x (v2-v0), normalized
	Color      core.Vec3 // Color of the whole triangle
}

// NewTriangle creates a triangle from three (point, normal) pairs. Every vertex
// starts with the triangle color.
func NewTriangle(points, normals [3]core.Vec3, color core.Vec3) *Triangle {
	t := &Triangle{Color: color}
	for i := range t.Vertices {
		t.Vertices[i] = Vertex{
			Point:  points[i],
			Color:  color,
			Normal: normals[i].Normalize(),
		}
	}
	t.computeNormal()
	return t
}

// NewTriangleFromVertices creates a triangle from fully specified vertices
func NewTriangleFromVertices(v0, v1, v2 Vertex) *Triangle {
	t := &Triangle{Vertices: [3]Vertex{v0, v1, v2}, Color: v0.Color}
	t.computeNormal()
	return t
}

// computeNormal calculates and caches the counter-clockwise face normal
func (t *Triangle) computeNormal() {
	edge1 := t.Vertices[1].Point.Subtract(t.Vertices[0].Point)
	edge2 := t.Vertices[2].Point.Subtract(t.Vertices[0].Point)
	t.FlatNormal = edge1.Cross(edge2).Normalize()
}

// Points returns the three vertex positions
func (t *Triangle) Points() [3]core.Vec3 {
	return [3]core.Vec3{t.Vertices[0].Point, t.Vertices[1].Point, t.Vertices[2].Point}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// Color and normal are blended from the vertices with weights w, u, v where u and v
// are the barycentric coordinates of vertices 1 and 2. The hit carries no material.
func (t *Triangle) Hit(ray core.Ray) (*HitRecord, bool) {
	v0, v1, v2 := t.Vertices[0], t.Vertices[1], t.Vertices[2]

	edge1 := v1.Point.Subtract(v0.Point)
	edge2 := v2.Point.Subtract(v0.Point)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray lies in (or parallel to) the plane of the triangle
	if det > -parallelEpsilon && det < parallelEpsilon {
		return nil, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(v0.Point)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || v > 1.0 {
		return nil, false
	}

	w := 1.0 - u - v
	if w < 0.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < core.HitEpsilon {
		return nil, false
	}

	color := v0.Color.Multiply(w).Add(v1.Color.Multiply(u)).Add(v2.Color.Multiply(v))
	normal := v0.Normal.Multiply(w).Add(v1.Normal.Multiply(u)).Add(v2.Normal.Multiply(v)).Normalize()

	return &HitRecord{
		Point:  ray.At(tParam),
		Normal: normal,
		Color:  color,
		T:      tParam,
		UV:     core.NewVec2(u, v),
		HasUV:  true,
	}, true
}

// SetSmooth colors every vertex by the absolute components of its normalized
// position. When smooth is false every vertex normal is replaced with the flat
// normal.
func (t *Triangle) SetSmooth(smooth bool) {
	for i := range t.Vertices {
		t.Vertices[i].Color = t.Vertices[i].Point.Normalize().Abs()
		if !smooth {
			t.Vertices[i].Normal = t.FlatNormal
		}
	}
}

// DrawVertices returns the vertices as they are submitted for display: with
// their own normals when shading is smooth, with the flat normal otherwise
func (t *Triangle) DrawVertices(cfg RenderConfig) [3]Vertex {
	out := t.Vertices
	if !cfg.Smooth {
		for i := range out {
			out[i].Normal = t.FlatNormal
		}
	}
	return out
}

// Transformed returns a copy of the triangle with the transform applied to
// positions and normals
func (t *Triangle) Transformed(tr Transform) *Triangle {
	out := &Triangle{Color: t.Color}
	for i, vertex := range t.Vertices {
		out.Vertices[i] = Vertex{
			Point:  tr.ApplyPoint(vertex.Point),
			Color:  vertex.Color,
			Normal: tr.ApplyNormal(vertex.Normal),
		}
	}
	out.computeNormal()
	return out
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	p := t.Points()
	return core.NewAABBFromPoints(p[0], p[1], p[2])
}
