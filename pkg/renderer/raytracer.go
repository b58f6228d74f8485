package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/go-mesh-raycaster/pkg/core"
	"github.com/df07/go-mesh-raycaster/pkg/geometry"
	"github.com/df07/go-mesh-raycaster/pkg/scene"
)

// Raycaster renders a scene with one primary ray per pixel and Phong shading
type Raycaster struct {
	scene  *scene.Scene
	camera *Camera
	config Config
	logger core.Logger
}

// NewRaycaster creates a new raycaster
func NewRaycaster(s *scene.Scene, config Config, logger core.Logger) *Raycaster {
	if logger == nil {
		logger = core.NopLogger{}
	}

	aspectRatio := float64(config.Width) / float64(config.Height)
	camera := NewCamera(s.Camera.From, s.Camera.At, s.Camera.Up, s.Camera.FOV, aspectRatio)

	return &Raycaster{
		scene:  s,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// shade computes the Phong color at a hit seen along ray
func (rc *Raycaster) shade(ray core.Ray, hit *geometry.HitRecord, stats *RenderStats) core.Vec3 {
	ambient, _, _ := hit.Material.Components(hit.Color)
	result := ambient.MultiplyVec(rc.config.AmbientColor())

	normal := hit.Normal
	toEye := ray.Direction.Negate()
	// Light the side of the surface facing the viewer
	if normal.Dot(toEye) < 0 {
		normal = normal.Negate()
	}

	for _, light := range rc.scene.Lights {
		toLightVec := light.Position.Subtract(hit.Point)
		distance := toLightVec.Length()
		toLight := toLightVec.Normalize()

		if rc.config.Shadows && rc.occluded(hit.Point, toLight, distance) {
			stats.ShadowedRays++
			continue
		}

		result = result.Add(hit.Material.Phong(hit.Color, normal, toLight, toEye, light.Color))
	}

	return result
}

// occluded reports whether any shape lies between point and a light distance away
func (rc *Raycaster) occluded(point, toLight core.Vec3, distance float64) bool {
	shadowHit, ok := rc.scene.Hit(core.NewRay(point, toLight))
	return ok && shadowHit.T < distance
}

// rayColor returns the color for a given ray
func (rc *Raycaster) rayColor(ray core.Ray, stats *RenderStats) core.Vec3 {
	hit, ok := rc.scene.Hit(ray)
	if !ok {
		return rc.config.BackgroundColor()
	}
	stats.HitPixels++
	return rc.shade(ray, hit, stats)
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func (rc *Raycaster) vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp before gamma so negative components never reach math.Pow
	colorVec = colorVec.Clamp(0.0, 1.0)
	colorVec = colorVec.GammaCorrect(rc.config.Gamma)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// Render traces one ray through the center of every pixel and returns the image
func (rc *Raycaster) Render() (*image.RGBA, RenderStats) {
	startTime := time.Now()
	width, height := rc.config.Width, rc.config.Height

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats := RenderStats{TotalPixels: width * height}

	for j := height - 1; j >= 0; j-- {
		for i := 0; i < width; i++ {
			s := (float64(i) + 0.5) / float64(width)
			t := (float64(j) + 0.5) / float64(height)

			ray := rc.camera.GetRay(s, t)
			img.SetRGBA(i, height-1-j, rc.vec3ToColor(rc.rayColor(ray, &stats)))
		}
	}

	stats.Elapsed = time.Since(startTime)
	rc.logger.Printf("Rendered %dx%d in %v (%.1f%% coverage)\n",
		width, height, stats.Elapsed, 100*stats.Coverage())
	return img, stats
}
