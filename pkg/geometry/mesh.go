package geometry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-mesh-raycaster/pkg/core"
	"github.com/df07/go-mesh-raycaster/pkg/loaders"
	"github.com/df07/go-mesh-raycaster/pkg/material"
)

// ErrNoTriangles is returned when a mesh would be built without geometry
var ErrNoTriangles = errors.New("mesh has no triangles")

// MappingMode selects how a mesh projects its appearance onto triangle hits
type MappingMode int

const (
	// MappingNone keeps the triangle's interpolated color and normal
	MappingNone MappingMode = iota
	// MappingDirect textures the mesh with each triangle's own (u,v)
	MappingDirect
	// MappingSpherical textures the mesh by projecting onto its bounding sphere
	MappingSpherical
)

// String returns the scene keyword of the mapping mode
func (m MappingMode) String() string {
	switch m {
	case MappingNone:
		return "none"
	case MappingDirect:
		return "direct"
	case MappingSpherical:
		return "spherical"
	default:
		return fmt.Sprintf("MappingMode(%d)", int(m))
	}
}

// ParseMappingMode converts a scene keyword to a mapping mode
func ParseMappingMode(s string) (MappingMode, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return MappingNone, nil
	case "direct":
		return MappingDirect, nil
	case "spherical":
		return MappingSpherical, nil
	default:
		return MappingNone, fmt.Errorf("unknown mapping mode %q (want direct, spherical or none)", s)
	}
}

// Mesh is a collection of triangles enclosed by a bounding sphere
type Mesh struct {
	Surface
	triangles []*Triangle
	bound     *Sphere
	mapping   MappingMode
}

// MeshOptions contains optional parameters for loading a mesh from a file
type MeshOptions struct {
	Smooth    bool        // Keep per-vertex normals (false replaces them with flat normals)
	Transform *Transform  // Optional placement baked into the vertices
	Logger    core.Logger // Optional progress logger
}

// NewMesh creates a mesh from triangles. The bounding sphere encloses the
// triangles' axis-aligned bounding box.
func NewMesh(triangles []*Triangle, mapping MappingMode) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, ErrNoTriangles
	}

	box := triangles[0].BoundingBox()
	for _, tri := range triangles[1:] {
		box = box.Union(tri.BoundingBox())
	}

	bound, err := NewSphere(box.Center(), box.Diagonal()/2)
	if err != nil {
		return nil, fmt.Errorf("failed to build bounding sphere: %w", err)
	}
	bound.Material = material.DefaultMeshMaterial()

	return &Mesh{
		Surface:   NewSurface(material.DefaultMeshMaterial()),
		triangles: triangles,
		bound:     bound,
		mapping:   mapping,
	}, nil
}

// NewMeshFromFile loads triangles from a smooth_triangle source or a Wavefront OBJ
// file and builds a mesh from them
func NewMeshFromFile(filename string, mapping MappingMode, options *MeshOptions) (*Mesh, error) {
	opts := MeshOptions{Smooth: true}
	if options != nil {
		opts = *options
	}
	if opts.Logger == nil {
		opts.Logger = core.NopLogger{}
	}

	data, err := loaders.LoadMeshTriangles(filename, opts.Logger)
	if err != nil {
		return nil, err
	}

	triangles := make([]*Triangle, 0, len(data))
	for _, d := range data {
		tri := NewTriangle(d.Points, d.Normals, d.Color)
		if opts.Transform != nil && !opts.Transform.IsIdentity() {
			tri = tri.Transformed(*opts.Transform)
		}
		tri.SetSmooth(opts.Smooth)
		triangles = append(triangles, tri)
	}

	mesh, err := NewMesh(triangles, mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh from %s: %w", filename, err)
	}
	opts.Logger.Printf("Loaded mesh %s: %d triangles, %s mapping, bound %v\n",
		filename, len(triangles), mapping, mesh.bound)
	return mesh, nil
}

// Appearance returns the surface carrying the mesh's scene appearance. With
// spherical mapping the appearance lives on the bounding sphere.
func (m *Mesh) Appearance() *Surface {
	if m.mapping == MappingSpherical {
		return &m.bound.Surface
	}
	return &m.Surface
}

// Hit returns the closest remapped triangle hit, or false when the bounding sphere
// is missed or no triangle produces a visible hit. Ties keep the earlier triangle.
func (m *Mesh) Hit(ray core.Ray) (*HitRecord, bool) {
	if !m.bound.Intersects(ray) {
		return nil, false
	}

	var closest *HitRecord
	for _, tri := range m.triangles {
		hit, ok := tri.Hit(ray)
		if !ok {
			continue
		}

		hit, ok = m.remap(hit)
		if !ok {
			continue
		}

		if closest == nil || hit.T < closest.T {
			closest = hit
		}
	}

	return closest, closest != nil
}

// remap applies the mapping mode to a raw triangle hit. The triangle's t is kept
// in every mode so hits stay comparable.
func (m *Mesh) remap(hit *HitRecord) (*HitRecord, bool) {
	switch m.mapping {
	case MappingDirect:
		return m.shade(hit.Point, hit.Normal, hit.T, hit.UV)

	case MappingSpherical:
		sphereHit, ok := m.bound.Hit(core.NewRay(hit.Point, hit.Normal))
		if !ok {
			return nil, false
		}
		sphereHit.T = hit.T
		sphereHit.Point = hit.Point
		return sphereHit, true

	default:
		return &HitRecord{
			Point:    hit.Point,
			Normal:   hit.Normal,
			Color:    hit.Color,
			T:        hit.T,
			Material: m.Material,
			UV:       hit.UV,
			HasUV:    hit.HasUV,
		}, true
	}
}

// Triangles returns the mesh triangles
func (m *Mesh) Triangles() []*Triangle {
	return m.triangles
}

// Bound returns the bounding sphere
func (m *Mesh) Bound() *Sphere {
	return m.bound
}

// Mapping returns the mapping mode chosen at construction
func (m *Mesh) Mapping() MappingMode {
	return m.mapping
}

// String formats the mesh as Mesh: N triangles
func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh: %d triangles", len(m.triangles))
}
