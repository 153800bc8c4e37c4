package scene

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
)

// DefaultWidth is the image width of the built-in scenes
const DefaultWidth = 400

// NewDefaultScene creates a sphere resting on a large ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := newScene(DefaultWidth, cameraConfig, renderer.DefaultSamplingConfig())
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100)
	return s
}

// NewSingleSphereScene creates a lone sphere floating in the sky
func NewSingleSphereScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := newScene(DefaultWidth, cameraConfig, renderer.DefaultSamplingConfig())
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	return s
}
