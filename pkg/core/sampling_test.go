package core

import (
	"math"
	"testing"
)

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewRandomSampler(42)
	b := NewRandomSampler(42)

	for i := 0; i < 50; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("Sample %d differs for equal seeds: %f vs %f", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("Sample %f outside [0, 1)", x)
		}
	}
}

func TestSequenceSampler_Wraps(t *testing.T) {
	s := NewSequenceSampler(0.1, 0.2, 0.3)
	expected := []float64{0.1, 0.2, 0.3, 0.1, 0.2}
	for i, want := range expected {
		if got := s.Float64(); got != want {
			t.Errorf("Sample %d: expected %f, got %f", i, want, got)
		}
	}
}

func TestRandomRange(t *testing.T) {
	s := NewSequenceSampler(0, 0.5, 0.75)
	for _, want := range []float64{-1, 1, 2} {
		if got := RandomRange(s, -1, 3); math.Abs(got-want) > 1e-12 {
			t.Errorf("Expected %f, got %f", want, got)
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(1)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point %v is not inside the unit sphere", p)
		}
	}
}

func TestRandomInUnitSphere_RejectsCorners(t *testing.T) {
	// First triple maps to (0.9, 0.9, 0.9), outside the ball; second to (0, 0, 0)
	s := NewSequenceSampler(0.95, 0.95, 0.95, 0.5, 0.5, 0.5)
	p := RandomInUnitSphere(s)
	if p.LengthSquared() != 0 {
		t.Errorf("Expected the rejected sample to be skipped, got %v", p)
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewRandomSampler(2)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Vector %v has length %f", v, v.Length())
		}
	}
}

func TestRandomInHemisphere(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
	}
	sampler := NewRandomSampler(9)

	for _, normal := range normals {
		for i := 0; i < 500; i++ {
			d := RandomInHemisphere(sampler, normal)
			if d.Dot(normal) < 0 {
				t.Fatalf("Direction %v points away from normal %v", d, normal)
			}
			if d.LengthSquared() >= 1 {
				t.Fatalf("Direction %v is not inside the unit sphere", d)
			}
		}
	}
}
