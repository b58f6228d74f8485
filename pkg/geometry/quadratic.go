package geometry

import "math"

// noRoot is returned for both roots when there is no real solution. It is below
// core.HitEpsilon so callers reject it the same way as a hit behind the ray.
const noRoot = -1

// Quadratic solves a*t^2 + b*t + c = 0 and returns both roots in ascending order.
// A repeated root is returned twice.
func Quadratic(a, b, c float64) (float64, float64) {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return noRoot, noRoot
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b + sqrtD) / (2 * a)
	t2 := (-b - sqrtD) / (2 * a)

	if t2 < t1 {
		return t2, t1
	}
	return t1, t2
}
