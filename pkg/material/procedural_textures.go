package material

import (
	"github.com/df07/go-mesh-raycaster/pkg/core"
)

// NewCheckerboardMap creates a checkerboard image map. The top-left check uses color1.
func NewCheckerboardMap(width, height, checkSize int, color1, color2 core.Vec3) *ImageMap {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			if (checkX+checkY)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return NewImageMap(width, height, pixels)
}

// NewGradientMap creates a horizontal ramp from color1 (u=0) to color2 (u=1).
// Used as a bump map it tilts normals at a constant rate along u.
func NewGradientMap(width, height int, color1, color2 core.Vec3) *ImageMap {
	pixels := make([]core.Vec3, width*height)

	for x := 0; x < width; x++ {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))

		for y := 0; y < height; y++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageMap(width, height, pixels)
}

// NewStripeMask creates a mask with opaque columns where u < cutoff and
// transparent columns elsewhere
func NewStripeMask(width, height int, cutoff float64) *ImageMap {
	white := core.NewVec3(1, 1, 1)
	pixels := make([]core.Vec3, width*height)

	for x := 0; x < width; x++ {
		u := (float64(x) + 0.5) / float64(width)
		if u >= cutoff {
			continue
		}
		for y := 0; y < height; y++ {
			pixels[y*width+x] = white
		}
	}

	return NewImageMap(width, height, pixels)
}
