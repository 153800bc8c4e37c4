package renderer

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// CameraConfig contains the pinhole camera parameters
type CameraConfig struct {
	AspectRatio    float64    // Viewport width divided by height
	ViewportHeight float64    // Viewport height in world units
	FocalLength    float64    // Distance from origin to the viewport plane
	Origin         core.Point // Eye position
}

// DefaultCameraConfig returns a 16:9 camera at the world origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
		Origin:         core.NewVec3(0, 0, 0),
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ViewportHeight != 0 {
		result.ViewportHeight = override.ViewportHeight
	}
	if override.FocalLength != 0 {
		result.FocalLength = override.FocalLength
	}
	if override.Origin != (core.Vec3{}) {
		result.Origin = override.Origin
	}
	return result
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Point
	lowerLeftCorner core.Point
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a simple camera
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	origin := config.Origin
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for viewport coordinates (u, v).
// (0, 0) is the lower left corner and (1, 1) the upper right; values outside
// that range are allowed and land outside the viewport.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
