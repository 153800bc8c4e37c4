package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler seeded with the given value.
// Equal seeds produce identical sample sequences.
func NewRandomSampler(seed int64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewSource(seed))}
}

// Float64 returns a random float64 in [0, 1)
func (r *RandomSampler) Float64() float64 {
	return r.random.Float64()
}

// RandomRange returns a uniform value in [min, max)
func RandomRange(sampler Sampler, min, max float64) float64 {
	return min + (max-min)*sampler.Float64()
}

// RandomInUnitSphere returns a uniformly distributed point strictly inside the unit sphere
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := RandomVec3(sampler, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a random direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).Normalize()
}

// RandomInHemisphere returns a point in the unit ball on the same side as normal
func RandomInHemisphere(sampler Sampler, normal Vec3) Vec3 {
	inUnitSphere := RandomInUnitSphere(sampler)
	if inUnitSphere.Dot(normal) > 0 {
		return inUnitSphere
	}
	return inUnitSphere.Negate()
}

// SequenceSampler replays a fixed list of values, wrapping around at the end
type SequenceSampler struct {
	values []float64
	next   int
}

// NewSequenceSampler creates a sampler that returns values in order.
// Values must lie in [0, 1) and at least one must be given.
func NewSequenceSampler(values ...float64) *SequenceSampler {
	return &SequenceSampler{values: values}
}

// Float64 returns the next value in the sequence
func (s *SequenceSampler) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
