package geometry

import (
	"github.com/df07/go-mesh-raycaster/pkg/core"
	"github.com/df07/go-mesh-raycaster/pkg/material"
)

// degenerateTolerance below which a cross product is treated as zero
const degenerateTolerance = 1e-9

var (
	worldUp = core.NewVec3(0, 1, 0)
	worldX  = core.NewVec3(1, 0, 0)
)

// Surface holds the appearance and transform state common to every shape.
// A nil Texture, Mask or BumpMap means the map is absent. Images are read-only
// and may be shared between surfaces.
type Surface struct {
	Color     core.Vec3     // Solid color, used when no texture is bound
	Texture   material.Image
	Mask      material.Image
	BumpMap   material.Image
	Material  material.Material
	Transform Transform
}

// NewSurface creates a white surface with the given material and an identity transform
func NewSurface(mat material.Material) Surface {
	return Surface{
		Color:     core.NewVec3(1, 1, 1),
		Material:  mat,
		Transform: NewTransform(),
	}
}

// SelectColor returns the texture color at uv, or the solid color when no texture is bound
func (s *Surface) SelectColor(uv core.Vec2) core.Vec3 {
	if s.Texture == nil {
		return s.Color
	}
	return s.Texture.RGB(uv.X, uv.Y)
}

// IsVisible reports whether the point at uv survives the mask.
// Without a mask every point is visible.
func (s *Surface) IsVisible(uv core.Vec2) bool {
	if s.Mask == nil {
		return true
	}
	return s.Mask.Gray(uv.X, uv.Y) > 0
}

// BumpNormal perturbs normal using the bump map gradient at uv.
// The tangent basis is U = up x N and V = N x U, with the x axis standing in for
// up when N is vertical.
func (s *Surface) BumpNormal(normal core.Vec3, uv core.Vec2) core.Vec3 {
	if s.BumpMap == nil {
		return normal
	}

	du, dv := s.BumpMap.Gradient(uv.X, uv.Y)

	u := worldUp.Cross(normal)
	if u.IsZero(degenerateTolerance) {
		u = worldX.Cross(normal)
	}
	v := normal.Cross(u)

	return normal.Add(u.Multiply(du)).Add(v.Multiply(dv)).Normalize()
}

// shade resolves visibility, color and normal for an already validated t
func (s *Surface) shade(point, normal core.Vec3, t float64, uv core.Vec2) (*HitRecord, bool) {
	if !s.IsVisible(uv) {
		return nil, false
	}

	return &HitRecord{
		Point:    point,
		Normal:   s.BumpNormal(normal, uv),
		Color:    s.SelectColor(uv),
		T:        t,
		Material: s.Material,
		UV:       uv,
		HasUV:    true,
	}, true
}

// AdjustMaterial applies bounded increments to the material coefficients
func (s *Surface) AdjustMaterial(dka, dkd, dks float64, dn int) {
	s.Material = s.Material.Adjust(dka, dkd, dks, dn)
}

// Move adds to the translation
func (s *Surface) Move(dx, dy, dz float64) {
	s.Transform.Translation = s.Transform.Translation.Add(core.NewVec3(dx, dy, dz))
}

// Scale multiplies the per-axis scale
func (s *Surface) Scale(sx, sy, sz float64) {
	s.Transform.Scale = s.Transform.Scale.MultiplyVec(core.NewVec3(sx, sy, sz))
}

// Rotate adds to the per-axis rotation, in degrees
func (s *Surface) Rotate(rx, ry, rz float64) {
	s.Transform.Rotation = s.Transform.Rotation.Add(core.NewVec3(rx, ry, rz))
}
