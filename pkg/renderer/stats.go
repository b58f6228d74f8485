package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	HitPixels    int           // Pixels whose primary ray hit a shape
	ShadowedRays int           // Light contributions blocked by another shape
	Elapsed      time.Duration // Wall time of the render
}

// Coverage returns the fraction of pixels that hit a shape
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

// MissedPixels returns the number of pixels filled with the background color
func (s RenderStats) MissedPixels() int {
	return s.TotalPixels - s.HitPixels
}
