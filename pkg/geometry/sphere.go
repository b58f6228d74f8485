package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-mesh-raycaster/pkg/core"
	"github.com/df07/go-mesh-raycaster/pkg/material"
)

// Sphere represents a sphere shape. It is also used as the bounding volume of a Mesh.
type Sphere struct {
	Center core.Vec3
	Radius float64
	Surface
}

// NewSphere creates a new white sphere with the default sphere material
func NewSphere(center core.Vec3, radius float64) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("sphere radius must be > 0, got %g", radius)
	}
	return &Sphere{
		Center:  center,
		Radius:  radius,
		Surface: NewSurface(material.DefaultSphereMaterial()),
	}, nil
}

// NewDefaultSphere creates a sphere of radius 0.5 at the origin with a random color
func NewDefaultSphere(random *rand.Rand) *Sphere {
	s := &Sphere{
		Center:  core.NewVec3(0, 0, 0),
		Radius:  0.5,
		Surface: NewSurface(material.DefaultSphereMaterial()),
	}
	s.Color = core.NewVec3(random.Float64(), random.Float64(), random.Float64())
	return s
}

// Appearance returns the sphere's surface state
func (s *Sphere) Appearance() *Surface {
	return &s.Surface
}

// roots returns the ascending ray parameters where the ray meets the sphere.
// The direction is unit length so the quadratic coefficient a is 1.
func (s *Sphere) roots(ray core.Ray) (float64, float64) {
	oc := ray.Origin.Subtract(s.Center)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius
	return Quadratic(1, b, c)
}

// Hit tests if a ray intersects with the sphere, preferring the nearer root
func (s *Sphere) Hit(ray core.Ray) (*HitRecord, bool) {
	t1, t2 := s.roots(ray)

	if hit, ok := s.viableT(t1, ray); ok {
		return hit, true
	}
	return s.viableT(t2, ray)
}

// Intersects reports whether the ray meets the sphere surface at a valid t,
// ignoring appearance. Used for bounding-volume rejection.
func (s *Sphere) Intersects(ray core.Ray) bool {
	_, t2 := s.roots(ray)
	return t2 >= core.HitEpsilon
}

// viableT turns a candidate t into a hit, rejecting it when it is too close
// to the ray origin or masked out
func (s *Sphere) viableT(t float64, ray core.Ray) (*HitRecord, bool) {
	if t < core.HitEpsilon {
		return nil, false
	}

	point := ray.At(t)
	uv := s.TexelUV(point)
	normal := point.Subtract(s.Center).Normalize()

	return s.shade(point, normal, t, uv)
}

// TexelUV maps a point on the sphere to (u,v) in [0,1]. u follows the angle
// around the y axis starting from -z, v runs from the top pole (0) to the bottom (1).
func (s *Sphere) TexelUV(point core.Vec3) core.Vec2 {
	p := point.Subtract(s.Center)
	r := p.Length()
	if r == 0 {
		return core.Vec2{}
	}

	theta := math.Atan2(p.X, p.Z) + math.Pi
	phi := math.Acos(max(-1, min(1, p.Y/r)))

	return core.NewVec2(theta/(2*math.Pi), phi/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// String formats the sphere as Sphere: Point(x, y, z) r Mat(...)
func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere: Point(%g, %g, %g) %g %v",
		s.Center.X, s.Center.Y, s.Center.Z, s.Radius, s.Material)
}
