package scene

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
)

const (
	gridColumns = 5
	gridRows    = 3
	gridSpacing = 0.8
	gridRadius  = 0.2
	groundY     = -0.5
)

// NewSphereGridScene creates rows of small spheres receding from the camera
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	// Raise the eye so the back rows are not hidden behind the front ones
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.Origin = core.NewVec3(0, 0.3, 0)
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 50

	s := newScene(DefaultWidth, cameraConfig, samplingConfig)

	// Ground sphere whose top touches groundY
	s.AddSphere(core.NewVec3(0, groundY-100, -1), 100)

	for row := 0; row < gridRows; row++ {
		z := -1.5 - float64(row)*gridSpacing*1.25
		for col := 0; col < gridColumns; col++ {
			x := (float64(col) - float64(gridColumns-1)/2) * gridSpacing
			s.AddSphere(core.NewVec3(x, groundY+gridRadius, z), gridRadius)
		}
	}

	return s
}
