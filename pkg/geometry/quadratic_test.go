package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-mesh-raycaster/pkg/core"
)

func TestQuadratic(t *testing.T) {
	tests := []struct {
		name      string
		a, b, c   float64
		expected1 float64
		expected2 float64
	}{
		{"two roots", 1, -3, 2, 1, 2},
		{"ascending order with negative a", -1, 3, -2, 1, 2},
		{"repeated root", 1, -2, 1, 1, 1},
		{"symmetric roots", 1, 0, -4, -2, 2},
		{"no real roots", 1, 0, 1, noRoot, noRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t1, t2 := Quadratic(tt.a, tt.b, tt.c)
			if math.Abs(t1-tt.expected1) > 1e-12 || math.Abs(t2-tt.expected2) > 1e-12 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.expected1, tt.expected2, t1, t2)
			}
			if t1 > t2 {
				t.Errorf("Expected ascending roots, got (%f, %f)", t1, t2)
			}
		})
	}
}

func TestQuadratic_NoRootIsRejected(t *testing.T) {
	t1, t2 := Quadratic(1, 0, 1)
	if t1 >= core.HitEpsilon || t2 >= core.HitEpsilon {
		t.Errorf("Expected sentinel roots below the hit epsilon, got (%f, %f)", t1, t2)
	}
}
