package material

import (
	"math"
	"testing"

	"github.com/df07/go-mesh-raycaster/pkg/core"
)

func TestNewCheckerboardMap(t *testing.T) {
	black := core.NewVec3(0, 0, 0)
	white := core.NewVec3(1, 1, 1)
	m := NewCheckerboardMap(4, 4, 2, white, black)

	tests := []struct {
		u, v     float64
		expected core.Vec3
	}{
		{0.1, 0.1, white},
		{0.9, 0.1, black},
		{0.1, 0.9, black},
		{0.9, 0.9, white},
	}
	for _, tt := range tests {
		if got := m.RGB(tt.u, tt.v); got != tt.expected {
			t.Errorf("RGB(%f, %f) = %v, expected %v", tt.u, tt.v, got, tt.expected)
		}
	}
}

func TestNewGradientMap(t *testing.T) {
	m := NewGradientMap(5, 3, core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))

	if g := m.Gray(0, 0.5); math.Abs(g) > 1e-9 {
		t.Errorf("Expected black at u=0, got %f", g)
	}
	if g := m.Gray(1, 0.5); math.Abs(g-1) > 1e-9 {
		t.Errorf("Expected white at u=1, got %f", g)
	}

	// Interior texels see a constant slope of 1/4 per pixel along u only
	du, dv := m.Gradient(0.5, 0.5)
	if math.Abs(du-0.25) > 1e-9 || math.Abs(dv) > 1e-9 {
		t.Errorf("Expected gradient (0.25, 0), got (%f, %f)", du, dv)
	}
}

func TestNewStripeMask(t *testing.T) {
	m := NewStripeMask(10, 2, 0.5)

	if m.Gray(0.2, 0.5) <= 0 {
		t.Errorf("Expected opaque texel left of the cutoff")
	}
	if m.Gray(0.8, 0.5) != 0 {
		t.Errorf("Expected transparent texel right of the cutoff")
	}
}
