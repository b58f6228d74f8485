package scene

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-mesh-raycaster/pkg/core"
	"github.com/df07/go-mesh-raycaster/pkg/geometry"
	"github.com/df07/go-mesh-raycaster/pkg/loaders"
)

// builder turns parsed records into shapes
type builder struct {
	baseDir string
	images  *ImageCache
	logger  core.Logger
}

func (b *builder) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(b.baseDir, path)
}

func (b *builder) sphere(rec loaders.SphereRecord) (*geometry.Sphere, error) {
	sphere, err := geometry.NewSphere(rec.Center, rec.Radius)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", rec.Line, err)
	}
	if err := b.applyAppearance(sphere.Appearance(), rec.Appearance); err != nil {
		return nil, fmt.Errorf("line %d: %w", rec.Line, err)
	}
	return sphere, nil
}

func (b *builder) mesh(rec loaders.MeshRecord) (*geometry.Mesh, error) {
	mapping, err := geometry.ParseMappingMode(rec.Mapping)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", rec.Line, err)
	}
	if !(rec.Scale > 0) {
		return nil, fmt.Errorf("line %d: mesh scale must be > 0, got %g", rec.Line, rec.Scale)
	}

	placement := geometry.NewTransform()
	placement.Scale = core.NewVec3(rec.Scale, rec.Scale, rec.Scale)
	placement.Translation = rec.Translate
	placement.Rotation = rec.Rotate

	mesh, err := geometry.NewMeshFromFile(b.resolve(rec.Source), mapping, &geometry.MeshOptions{
		Smooth:    rec.Smooth,
		Transform: &placement,
		Logger:    b.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", rec.Line, err)
	}

	if err := b.applyAppearance(mesh.Appearance(), rec.Appearance); err != nil {
		return nil, fmt.Errorf("line %d: %w", rec.Line, err)
	}
	return mesh, nil
}

// applyAppearance copies a parsed appearance onto a surface, loading images
// through the shared cache
func (b *builder) applyAppearance(surface *geometry.Surface, rec loaders.AppearanceRecord) error {
	if rec.Solid != nil {
		surface.Color = *rec.Solid
	}
	if rec.Material != nil {
		surface.Material = *rec.Material
	}

	if rec.Texture != "" {
		img, err := b.images.Get(b.resolve(rec.Texture))
		if err != nil {
			return fmt.Errorf("failed to load texture: %w", err)
		}
		surface.Texture = img
	}
	if rec.Mask != "" {
		img, err := b.images.Get(b.resolve(rec.Mask))
		if err != nil {
			return fmt.Errorf("failed to load mask: %w", err)
		}
		surface.Mask = img
	}
	if rec.BumpMap != "" {
		img, err := b.images.Get(b.resolve(rec.BumpMap))
		if err != nil {
			return fmt.Errorf("failed to load bump map: %w", err)
		}
		surface.BumpMap = img
	}
	return nil
}
