package renderer

import (
	"image/color"
	"testing"

	"github.com/df07/go-mesh-raycaster/pkg/core"
	"github.com/df07/go-mesh-raycaster/pkg/geometry"
	"github.com/df07/go-mesh-raycaster/pkg/material"
	"github.com/df07/go-mesh-raycaster/pkg/scene"
)

func newSingleSphereScene(t *testing.T, lightPos core.Vec3) *scene.Scene {
	t.Helper()
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, 0), 1)
	if err != nil {
		t.Fatalf("Failed to create sphere: %v", err)
	}
	return &scene.Scene{
		Shapes: []geometry.Shape{sphere},
		Lights: []scene.Light{{Position: lightPos, Color: core.NewVec3(1, 1, 1)}},
		Camera: scene.DefaultCameraSettings(),
	}
}

func smallConfig() Config {
	config := DefaultConfig()
	config.Width = 11
	config.Height = 11
	return config
}

func TestRaycaster_Render(t *testing.T) {
	s := newSingleSphereScene(t, core.NewVec3(0, 0, 5))
	img, stats := NewRaycaster(s, smallConfig(), core.NopLogger{}).Render()

	if img.Bounds().Dx() != 11 || img.Bounds().Dy() != 11 {
		t.Fatalf("Expected 11x11 image, got %v", img.Bounds())
	}
	if stats.TotalPixels != 121 {
		t.Errorf("Expected 121 pixels, got %d", stats.TotalPixels)
	}
	if stats.HitPixels == 0 || stats.MissedPixels() == 0 {
		t.Errorf("Expected both hits and misses, got %d hit %d missed", stats.HitPixels, stats.MissedPixels())
	}

	// Facing the light head on saturates every channel
	center := img.RGBAAt(5, 5)
	if center != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected saturated center pixel, got %v", center)
	}

	corner := img.RGBAAt(0, 0)
	if corner != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected background corner pixel, got %v", corner)
	}
}

func TestRaycaster_Shadows(t *testing.T) {
	// Light behind the sphere: every lit point is occluded by the sphere itself
	s := newSingleSphereScene(t, core.NewVec3(0, 0, -10))

	config := smallConfig()
	_, stats := NewRaycaster(s, config, core.NopLogger{}).Render()
	if stats.ShadowedRays != stats.HitPixels {
		t.Errorf("Expected every hit to be shadowed, got %d of %d", stats.ShadowedRays, stats.HitPixels)
	}

	config.Shadows = false
	_, stats = NewRaycaster(s, config, core.NopLogger{}).Render()
	if stats.ShadowedRays != 0 {
		t.Errorf("Expected no shadow rays with shadows disabled, got %d", stats.ShadowedRays)
	}
}

func TestRaycaster_AmbientOnlyInShadow(t *testing.T) {
	s := newSingleSphereScene(t, core.NewVec3(0, 0, -10))
	img, _ := NewRaycaster(s, smallConfig(), core.NopLogger{}).Render()

	// ka=0.3 on white, gamma 2
	center := img.RGBAAt(5, 5)
	if center.R < 138 || center.R > 140 {
		t.Errorf("Expected ambient-only value near 139, got %d", center.R)
	}
}

func TestRaycaster_TextureAndMask(t *testing.T) {
	s := newSingleSphereScene(t, core.NewVec3(0, 0, 5))
	_, plain := NewRaycaster(s, smallConfig(), core.NopLogger{}).Render()

	sphere := s.Shapes[0].(*geometry.Sphere)
	sphere.Texture = material.NewCheckerboardMap(8, 8, 2, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	// Hide the +x half of the sphere, front and back
	sphere.Mask = material.NewStripeMask(16, 1, 0.5)

	img, masked := NewRaycaster(s, smallConfig(), core.NopLogger{}).Render()
	if masked.HitPixels == 0 || masked.HitPixels >= plain.HitPixels {
		t.Errorf("Expected the mask to remove some hits, got %d of %d", masked.HitPixels, plain.HitPixels)
	}

	// Left of center is visible and textured, right of center is background
	left := img.RGBAAt(3, 5)
	if left.G != 0 || (left.R == 0 && left.B == 0) {
		t.Errorf("Expected checker color on the visible half, got %v", left)
	}
	if right := img.RGBAAt(7, 5); right != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected background on the masked half, got %v", right)
	}
}

func TestRenderStats_Coverage(t *testing.T) {
	stats := RenderStats{TotalPixels: 4, HitPixels: 1}
	if stats.Coverage() != 0.25 {
		t.Errorf("Expected coverage 0.25, got %f", stats.Coverage())
	}
	if stats.MissedPixels() != 3 {
		t.Errorf("Expected 3 missed pixels, got %d", stats.MissedPixels())
	}
	if (RenderStats{}).Coverage() != 0 {
		t.Errorf("Expected zero coverage for empty render")
	}
}
