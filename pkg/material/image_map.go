package material

import (
	"github.com/df07/go-mesh-raycaster/pkg/core"
)

// Image is a 2D map sampled by normalized (u,v) coordinates. It backs texture,
// mask and bump lookups.
type Image interface {
	// RGB returns the color at (u,v)
	RGB(u, v float64) core.Vec3
	// Gray returns the grayscale intensity at (u,v) in [0,1]
	Gray(u, v float64) float64
	// Gradient returns the directional change in intensity at (u,v)
	Gradient(u, v float64) (du, dv float64)
}

// ImageMap is an Image backed by a pixel array
type ImageMap struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at v=0
}

// NewImageMap creates a new image map
func NewImageMap(width, height int, pixels []core.Vec3) *ImageMap {
	return &ImageMap{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// texel converts UV coordinates to pixel coordinates using nearest-neighbor lookup
func (m *ImageMap) texel(u, v float64) (int, int) {
	u = max(0, min(1, u))
	v = max(0, min(1, v))

	x := int(u * float64(m.Width))
	y := int(v * float64(m.Height))

	// u or v of exactly 1 lands one past the last pixel
	if x >= m.Width {
		x = m.Width - 1
	}
	if y >= m.Height {
		y = m.Height - 1
	}
	return x, y
}

func (m *ImageMap) pixel(x, y int) core.Vec3 {
	x = max(0, min(m.Width-1, x))
	y = max(0, min(m.Height-1, y))
	return m.Pixels[y*m.Width+x]
}

// RGB samples the color at the given UV coordinates
func (m *ImageMap) RGB(u, v float64) core.Vec3 {
	x, y := m.texel(u, v)
	return m.pixel(x, y)
}

// Gray samples the luminance at the given UV coordinates
func (m *ImageMap) Gray(u, v float64) float64 {
	x, y := m.texel(u, v)
	return m.pixel(x, y).Luminance()
}

// Gradient returns the central difference of luminance along u and v,
// measured in one-pixel steps
func (m *ImageMap) Gradient(u, v float64) (du, dv float64) {
	x, y := m.texel(u, v)
	du = (m.pixel(x+1, y).Luminance() - m.pixel(x-1, y).Luminance()) / 2
	dv = (m.pixel(x, y+1).Luminance() - m.pixel(x, y-1).Luminance()) / 2
	return du, dv
}
