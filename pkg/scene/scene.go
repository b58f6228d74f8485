package scene

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-mesh-raycaster/pkg/core"
	"github.com/df07/go-mesh-raycaster/pkg/geometry"
	"github.com/df07/go-mesh-raycaster/pkg/loaders"
)

// Light is a point light
type Light struct {
	Position core.Vec3
	Color    core.Vec3
}

// CameraSettings describes the viewpoint of the scene
type CameraSettings struct {
	From core.Vec3
	At   core.Vec3
	Up   core.Vec3
	FOV  float64 // Vertical field of view in degrees
}

// DefaultCameraSettings looks at the origin from +z
func DefaultCameraSettings() CameraSettings {
	return CameraSettings{
		From: core.NewVec3(0, 0, 5),
		At:   core.NewVec3(0, 0, 0),
		Up:   core.NewVec3(0, 1, 0),
		FOV:  40,
	}
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes []geometry.Shape
	Lights []Light
	Camera CameraSettings
}

// Hit returns the closest hit over every shape in the scene
func (s *Scene) Hit(ray core.Ray) (*geometry.HitRecord, bool) {
	var closest *geometry.HitRecord
	for _, shape := range s.Shapes {
		if hit, ok := shape.Hit(ray); ok && (closest == nil || hit.T < closest.T) {
			closest = hit
		}
	}
	return closest, closest != nil
}

// GetPrimitiveCount returns the number of spheres plus mesh triangles
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		if mesh, ok := shape.(*geometry.Mesh); ok {
			count += len(mesh.Triangles())
		} else {
			count++
		}
	}
	return count
}

// Meshes returns the meshes of the scene in declaration order
func (s *Scene) Meshes() []*geometry.Mesh {
	var meshes []*geometry.Mesh
	for _, shape := range s.Shapes {
		if mesh, ok := shape.(*geometry.Mesh); ok {
			meshes = append(meshes, mesh)
		}
	}
	return meshes
}

// LoadScene parses a scene file and builds it. Relative paths in the file resolve
// against the file's directory.
func LoadScene(filename string, logger core.Logger) (*Scene, error) {
	desc, err := loaders.LoadScene(filename)
	if err != nil {
		return nil, err
	}
	return NewSceneFromDescription(desc, filepath.Dir(filename), logger)
}

// NewSceneFromDescription validates parsed scene records and constructs the shapes
func NewSceneFromDescription(desc *loaders.SceneDescription, baseDir string, logger core.Logger) (*Scene, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	b := &builder{
		baseDir: baseDir,
		images:  NewImageCache(),
		logger:  logger,
	}

	s := &Scene{Camera: DefaultCameraSettings()}

	if desc.Camera != nil {
		if desc.Camera.FOV <= 0 || desc.Camera.FOV >= 180 {
			return nil, fmt.Errorf("line %d: camera fov must be in (0,180), got %g", desc.Camera.Line, desc.Camera.FOV)
		}
		s.Camera = CameraSettings{
			From: desc.Camera.From,
			At:   desc.Camera.At,
			Up:   desc.Camera.Up,
			FOV:  desc.Camera.FOV,
		}
	}

	for _, rec := range desc.Lights {
		s.Lights = append(s.Lights, Light{Position: rec.Position, Color: rec.Color})
	}

	for _, rec := range desc.Spheres {
		sphere, err := b.sphere(rec)
		if err != nil {
			return nil, err
		}
		s.Shapes = append(s.Shapes, sphere)
	}

	for _, rec := range desc.Meshes {
		mesh, err := b.mesh(rec)
		if err != nil {
			return nil, err
		}
		s.Shapes = append(s.Shapes, mesh)
	}

	logger.Printf("Scene built: %d shapes (%d primitives), %d lights, %d images\n",
		len(s.Shapes), s.GetPrimitiveCount(), len(s.Lights), b.images.Len())
	return s, nil
}
