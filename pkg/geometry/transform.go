package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-mesh-raycaster/pkg/core"
)

// Transform is the translation, scale and rotation (degrees) of a shape
type Transform struct {
	Translation core.Vec3
	Scale       core.Vec3
	Rotation    core.Vec3
}

// NewTransform returns the identity transform
func NewTransform() Transform {
	return Transform{Scale: core.NewVec3(1, 1, 1)}
}

// Matrix returns the model matrix. Scaling is applied first, then rotation about
// x, z and y, then translation.
func (tr Transform) Matrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(tr.Translation.X, tr.Translation.Y, tr.Translation.Z)
	rotate := mgl64.HomogRotate3DY(mgl64.DegToRad(tr.Rotation.Y)).
		Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(tr.Rotation.Z))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(tr.Rotation.X)))
	scale := mgl64.Scale3D(tr.Scale.X, tr.Scale.Y, tr.Scale.Z)

	return translate.Mul4(rotate).Mul4(scale)
}

// ApplyPoint transforms a position
func (tr Transform) ApplyPoint(p core.Vec3) core.Vec3 {
	out := tr.Matrix().Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return core.NewVec3(out[0], out[1], out[2])
}

// ApplyNormal transforms a direction by the inverse transpose of the model matrix
// and renormalizes it
func (tr Transform) ApplyNormal(n core.Vec3) core.Vec3 {
	normalMatrix := tr.Matrix().Mat3().Inv().Transpose()
	out := normalMatrix.Mul3x1(mgl64.Vec3{n.X, n.Y, n.Z})
	return core.NewVec3(out[0], out[1], out[2]).Normalize()
}

// IsIdentity reports whether the transform leaves points unchanged
func (tr Transform) IsIdentity() bool {
	return tr.Translation.IsZero(0) &&
		tr.Rotation.IsZero(0) &&
		tr.Scale.Equals(core.NewVec3(1, 1, 1), 0)
}
