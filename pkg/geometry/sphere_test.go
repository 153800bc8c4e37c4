package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
	if hit != nil {
		t.Errorf("Expected nil record on a miss, got %+v", hit)
	}
}

func TestSphere_Hit_CanonicalFrontFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expected := &HitRecord{
		Point:     core.NewVec3(0, 0, -0.5),
		Normal:    core.NewVec3(0, 0, 1),
		T:         0.5,
		FrontFace: true,
	}
	if diff := cmp.Diff(expected, hit, approx); diff != "" {
		t.Errorf("Unexpected hit record (-want +got):\n%s", diff)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	tests := []struct {
		name           string
		radius         float64
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			radius:         1.0,
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "unnormalized direction",
			radius:         1.0,
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			// A negative radius turns the outward normal inward
			name:           "negative radius reports back face",
			radius:         -1.0,
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, 0), tt.radius)
			hit, isHit := sphere.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), 0.001, 1000.0)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if diff := cmp.Diff(tt.expectedNormal, hit.Normal, approx); diff != "" {
				t.Errorf("Unexpected normal (-want +got):\n%s", diff)
			}
			if hit.Normal.Dot(tt.rayDirection) > 0 {
				t.Errorf("Normal %v does not oppose the ray direction %v", hit.Normal, tt.rayDirection)
			}
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	if diff := cmp.Diff(core.NewVec3(1, 0, 0), hit.Point, approx); diff != "" {
		t.Errorf("Unexpected hit point (-want +got):\n%s", diff)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0.001, 0.5); isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	if hit, isHit := sphere.Hit(ray, 3.5, 1000.0); isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Both bounds are inclusive
	if _, isHit := sphere.Hit(ray, 0.001, 1.0); !isHit {
		t.Error("Expected hit when the root equals tMax")
	}
	if _, isHit := sphere.Hit(ray, 1.0, 1000.0); !isHit {
		t.Error("Expected hit when the root equals tMin")
	}
}

func TestSphere_Hit_NearRootOnly(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	t.Run("entry point below tMin", func(t *testing.T) {
		// Roots are t=1 (entry) and t=3 (exit); the exit is not tried
		ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
		if hit, isHit := sphere.Hit(ray, 1.5, 1000.0); isHit {
			t.Errorf("Expected miss when the entry root is below tMin, got hit at t=%f", hit.T)
		}
	})

	t.Run("ray starting inside", func(t *testing.T) {
		// Roots are t=-1 and t=1; a camera inside a sphere does not see it
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
		if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
			t.Errorf("Expected miss from inside the sphere, got hit at t=%f", hit.T)
		}
	})
}

func TestSphere_Hit_DoesNotModifyRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	original := ray

	sphere.Hit(ray, 0.001, 1000.0)
	if diff := cmp.Diff(original, ray); diff != "" {
		t.Errorf("Ray changed (-want +got):\n%s", diff)
	}
}
