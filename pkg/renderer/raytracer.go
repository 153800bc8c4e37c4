package renderer

import (
	"time"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
	"github.com/df07/go-diffuse-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed of the pass's random sampler
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// SamplingOverride holds optional sampling settings. A nil field keeps the
// base value, so zero depth and seed 0 can be chosen explicitly.
type SamplingOverride struct {
	SamplesPerPixel *int
	MaxDepth        *int
	Seed            *int64
}

// MergeSamplingConfig returns base with every set field of override applied
func MergeSamplingConfig(base SamplingConfig, override SamplingOverride) SamplingConfig {
	result := base
	if override.SamplesPerPixel != nil {
		result.SamplesPerPixel = *override.SamplesPerPixel
	}
	if override.MaxDepth != nil {
		result.MaxDepth = *override.MaxDepth
	}
	if override.Seed != nil {
		result.Seed = *override.Seed
	}
	return result
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Hittable
}

// Raytracer handles the rendering process.
// It is single threaded: one sampler drives every pixel of a pass.
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. Width and height must both be at least 2.
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	config := DefaultSamplingConfig()
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(integrator.DefaultIntegratorConfig()),
		sampler:    core.NewRandomSampler(config.Seed),
		logger:     discardLogger{},
	}
}

// SetSamplingConfig updates the sampling configuration and reseeds the sampler
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
	rt.sampler = core.NewRandomSampler(config.Seed)
}

// SetSampler replaces the random source, e.g. with a fixed sequence in tests
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetLogger sets where progress is reported; nil silences it
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = discardLogger{}
	}
	rt.logger = logger
}

// samplePixel accumulates SamplesPerPixel jittered estimates for pixel (i, j)
func (rt *Raytracer) samplePixel(camera *Camera, world geometry.Hittable, i, j int) PixelStats {
	var ps PixelStats
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + rt.sampler.Float64()) / float64(rt.width-1)
		v := (float64(j) + rt.sampler.Float64()) / float64(rt.height-1)

		ray := camera.GetRay(u, v)
		ps.AddSample(rt.integrator.RayColor(ray, world, rt.sampler, rt.config.MaxDepth))
	}
	return ps
}

// RenderPass renders a single pass with multi-sampling and returns the frame
func (rt *Raytracer) RenderPass() (*Frame, RenderStats) {
	start := time.Now()
	frame := NewFrame(rt.width, rt.height)
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()

	for j := rt.height - 1; j >= 0; j-- {
		rt.logger.Printf("Scanlines remaining: %d\n", j)
		for i := 0; i < rt.width; i++ {
			ps := rt.samplePixel(camera, world, i, j)
			frame.Set(i, j, ps.ToneMap())
		}
	}

	stats := RenderStats{
		TotalPixels:     rt.width * rt.height,
		TotalSamples:    rt.width * rt.height * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		Duration:        time.Since(start),
	}
	return frame, stats
}

type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}
