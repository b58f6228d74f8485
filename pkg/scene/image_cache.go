package scene

import (
	"path/filepath"

	"github.com/df07/go-mesh-raycaster/pkg/loaders"
	"github.com/df07/go-mesh-raycaster/pkg/material"
)

// ImageCache decodes each image file once and hands the same read-only map to
// every shape that references it
type ImageCache struct {
	images map[string]*material.ImageMap
}

// NewImageCache creates an empty cache
func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[string]*material.ImageMap)}
}

// Get returns the image for path, loading it on first use
func (c *ImageCache) Get(path string) (material.Image, error) {
	key := filepath.Clean(path)

	if img, ok := c.images[key]; ok {
		return img, nil
	}

	img, err := loaders.LoadImageMap(key)
	if err != nil {
		return nil, err
	}
	c.images[key] = img
	return img, nil
}

// Len returns the number of decoded images
func (c *ImageCache) Len() int {
	return len(c.images)
}
