package material

import (
	"fmt"
	"math"

	"github.com/df07/go-mesh-raycaster/pkg/core"
)

// MaxShininess is the largest specular exponent a material may carry
const MaxShininess = 128

// Material holds Phong reflectance coefficients
type Material struct {
	Ka float64 // Ambient coefficient
	Kd float64 // Diffuse coefficient
	Ks float64 // Specular coefficient
	N  float64 // Specular exponent (Phong size), 0 to 128
}

// NewMaterial creates a new material
func NewMaterial(ka, kd, ks, n float64) Material {
	return Material{Ka: ka, Kd: kd, Ks: ks, N: n}
}

// DefaultSphereMaterial returns the baseline coefficients for spheres
func DefaultSphereMaterial() Material {
	return Material{Ka: 0.3, Kd: 0.5, Ks: 0.7, N: 70}
}

// DefaultMeshMaterial returns the baseline coefficients for meshes
func DefaultMeshMaterial() Material {
	return Material{Ka: 0.4, Kd: 0.5, Ks: 0.7, N: 70}
}

// Validate checks that the exponent is within range and coefficients are non-negative
func (m Material) Validate() error {
	if m.Ka < 0 || m.Kd < 0 || m.Ks < 0 {
		return fmt.Errorf("material coefficients must be non-negative, got %v", m)
	}
	if m.N < 0 || m.N > MaxShininess {
		return fmt.Errorf("material exponent must be in [0,%d], got %g", MaxShininess, m.N)
	}
	return nil
}

// Adjust returns the material with deltas applied. Coefficients that grow past 1
// wrap back to 0 and an exponent past 128 wraps back to 10.
func (m Material) Adjust(dka, dkd, dks float64, dn int) Material {
	m.Ka += dka
	if m.Ka > 1 {
		m.Ka = 0
	}

	m.Kd += dkd
	if m.Kd > 1 {
		m.Kd = 0
	}

	m.Ks += dks
	if m.Ks > 1 {
		m.Ks = 0
	}

	m.N += float64(dn)
	if m.N > MaxShininess {
		m.N = 10
	}
	return m
}

// Components returns the ambient, diffuse and specular colors for a base color
func (m Material) Components(color core.Vec3) (ambient, diffuse, specular core.Vec3) {
	return color.Multiply(m.Ka), color.Multiply(m.Kd), color.Multiply(m.Ks)
}

// Phong returns the diffuse plus specular contribution of a single light.
// normal, toLight and toEye must be unit vectors pointing away from the surface.
func (m Material) Phong(color, normal, toLight, toEye, lightColor core.Vec3) core.Vec3 {
	_, diffuse, specular := m.Components(color)

	lambert := normal.Dot(toLight)
	if lambert <= 0 {
		return core.Vec3{}
	}
	result := diffuse.Multiply(lambert)

	// Reflect the light direction about the normal
	reflected := normal.Multiply(2 * lambert).Subtract(toLight)
	if spec := reflected.Dot(toEye); spec > 0 {
		result = result.Add(specular.Multiply(math.Pow(spec, m.N)))
	}

	return result.MultiplyVec(lightColor)
}

// String formats the material as Mat(ka,kd,ks,n)
func (m Material) String() string {
	return fmt.Sprintf("Mat(%g,%g,%g,%g)", m.Ka, m.Kd, m.Ks, m.N)
}
