package scene

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
)

// sceneFile mirrors the YAML scene description. Omitted settings keep the
// built-in defaults.
type sceneFile struct {
	Name        string `yaml:"name"`        // Listing metadata, see ParseSceneFileMetadata
	Description string `yaml:"description"` // Listing metadata
	Width       int    `yaml:"width"`
	Camera      struct {
		AspectRatio    float64   `yaml:"aspect_ratio"`
		ViewportHeight float64   `yaml:"viewport_height"`
		FocalLength    float64   `yaml:"focal_length"`
		Origin         []float64 `yaml:"origin"`
	} `yaml:"camera"`
	Sampling struct {
		SamplesPerPixel *int   `yaml:"samples_per_pixel"`
		MaxDepth        *int   `yaml:"max_depth"`
		Seed            *int64 `yaml:"seed"`
	} `yaml:"sampling"`
	Spheres []struct {
		Center []float64 `yaml:"center"`
		Radius float64   `yaml:"radius"`
	} `yaml:"spheres"`
}

// LoadFile reads a YAML scene description from disk
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("while reading scene file: %w", err)
	}

	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, xerrors.Errorf("while loading %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scene description. Unknown keys are rejected.
func Parse(r io.Reader) (*Scene, error) {
	var f sceneFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && err != io.EOF {
		return nil, xerrors.Errorf("while decoding scene: %w", err)
	}

	cameraOverride := renderer.CameraConfig{
		AspectRatio:    f.Camera.AspectRatio,
		ViewportHeight: f.Camera.ViewportHeight,
		FocalLength:    f.Camera.FocalLength,
	}
	if f.Camera.Origin != nil {
		origin, err := toVec3(f.Camera.Origin)
		if err != nil {
			return nil, xerrors.Errorf("camera.origin: %w", err)
		}
		cameraOverride.Origin = origin
	}

	samplingOverride := renderer.SamplingOverride{
		SamplesPerPixel: f.Sampling.SamplesPerPixel,
		MaxDepth:        f.Sampling.MaxDepth,
		Seed:            f.Sampling.Seed,
	}

	width := DefaultWidth
	if f.Width != 0 {
		width = f.Width
	}

	s := newScene(width, renderer.DefaultCameraConfig(),
		renderer.MergeSamplingConfig(renderer.DefaultSamplingConfig(), samplingOverride))
	s.SetCameraConfig(renderer.MergeCameraConfig(s.CameraConfig, cameraOverride))

	for i, sphere := range f.Spheres {
		center, err := toVec3(sphere.Center)
		if err != nil {
			return nil, xerrors.Errorf("spheres[%d].center: %w", i, err)
		}
		s.AddSphere(center, sphere.Radius)
	}

	if err := s.Validate(); err != nil {
		return nil, xerrors.Errorf("invalid scene: %w", err)
	}
	return s, nil
}

func toVec3(values []float64) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, xerrors.Errorf("expected 3 components, got %d", len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
