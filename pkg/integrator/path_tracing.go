package integrator

import (
	"math"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
)

// IntegratorConfig contains the shading constants of the path tracer
type IntegratorConfig struct {
	Reflectance       float64    // Fraction of light kept at each diffuse bounce
	ShadowAcneEpsilon float64    // Minimum hit distance, skips self-intersections of bounced rays
	TopColor          core.Color // Sky color for rays pointing straight up
	BottomColor       core.Color // Sky color for rays pointing straight down
}

// DefaultIntegratorConfig returns a 50% grey diffuse world under a blue-white sky
func DefaultIntegratorConfig() IntegratorConfig {
	return IntegratorConfig{
		Reflectance:       0.5,
		ShadowAcneEpsilon: 0.001,
		TopColor:          core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:       core.NewVec3(1.0, 1.0, 1.0),
	}
}

// PathTracingIntegrator implements unidirectional path tracing over uniformly diffuse surfaces
type PathTracingIntegrator struct {
	config IntegratorConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config IntegratorConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, pt.config.ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	return pt.calculateDiffuseColor(hit, world, sampler, depth)
}

// calculateDiffuseColor bounces toward a random point in the hemisphere above the hit
func (pt *PathTracingIntegrator) calculateDiffuseColor(hit *geometry.HitRecord, world geometry.Hittable, sampler core.Sampler, depth int) core.Color {
	target := hit.Point.Add(core.RandomInHemisphere(sampler, hit.Normal))
	scattered := core.NewRay(hit.Point, target.Subtract(hit.Point))
	return pt.RayColor(scattered, world, sampler, depth-1).Multiply(pt.config.Reflectance)
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.config.BottomColor.Multiply(1.0 - t).Add(pt.config.TopColor.Multiply(t))
}
