package scene

import (
	"golang.org/x/xerrors"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	World          *geometry.HittableList // Objects in the scene, intersected in order
	Width          int                    // Image width; height follows the camera aspect ratio
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// newScene creates an empty scene and builds its camera
func newScene(width int, cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) *Scene {
	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		World:          geometry.NewHittableList(),
		Width:          width,
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the objects rays are traced against
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// Height returns the image height implied by the width and aspect ratio
func (s *Scene) Height() int {
	return int(float64(s.Width) / s.CameraConfig.AspectRatio)
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(center core.Point, radius float64) {
	s.World.Add(geometry.NewSphere(center, radius))
}

// SetCameraConfig replaces the camera parameters and rebuilds the camera
func (s *Scene) SetCameraConfig(config renderer.CameraConfig) {
	s.CameraConfig = config
	s.Camera = renderer.NewCamera(config)
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if s.CameraConfig.AspectRatio <= 0 {
		return xerrors.Errorf("aspect ratio must be positive, got %v", s.CameraConfig.AspectRatio)
	}
	if s.CameraConfig.ViewportHeight <= 0 {
		return xerrors.Errorf("viewport height must be positive, got %v", s.CameraConfig.ViewportHeight)
	}
	if s.Width < 2 || s.Height() < 2 {
		return xerrors.Errorf("image must be at least 2x2 pixels, got %dx%d", s.Width, s.Height())
	}
	if s.SamplingConfig.SamplesPerPixel <= 0 {
		return xerrors.Errorf("samples per pixel must be positive, got %d", s.SamplingConfig.SamplesPerPixel)
	}
	if s.SamplingConfig.MaxDepth < 0 {
		return xerrors.Errorf("max depth must not be negative, got %d", s.SamplingConfig.MaxDepth)
	}
	return nil
}
