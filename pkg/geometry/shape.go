package geometry

import (
	"github.com/df07/go-mesh-raycaster/pkg/core"
	"github.com/df07/go-mesh-raycaster/pkg/material"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Unit surface normal at intersection
	Color    core.Vec3         // Resolved shading color
	T        float64           // Parameter t along the ray
	Material material.Material // Material of the shape that was hit
	UV       core.Vec2         // Surface parameters, valid when HasUV is set
	HasUV    bool
}

// Shape interface for objects that can be hit by rays.
// Implemented by Sphere and Mesh.
type Shape interface {
	// Hit returns the nearest visible intersection, or false on a miss
	Hit(ray core.Ray) (*HitRecord, bool)
	// Appearance returns the surface state that scene appearance is applied to
	Appearance() *Surface
}

// RenderConfig carries draw-time settings shared by every shape in a render pass
type RenderConfig struct {
	Smooth bool // Use per-vertex normals instead of flat triangle normals
}

// DefaultRenderConfig returns smooth shading
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{Smooth: true}
}
