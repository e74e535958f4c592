package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/material"
)

func testSphere(center core.Vec3, radius float64) *Sphere {
	return NewSphere(center, radius, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
}

func TestSphereHitMiss(t *testing.T) {
	sphere := testSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("expected miss, got hit at t=%f", hit.T)
	}
}

func TestSphereHitAwayPointingRay(t *testing.T) {
	// A ray starting outside the sphere and pointing away never hits
	sphere := testSphere(core.NewVec3(0, 0, -2), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if _, isHit := sphere.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("expected miss for ray pointing away from sphere")
	}
}

func TestSphereHitFrontAndBackFace(t *testing.T) {
	sphere := testSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("expected hit, got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("expected frontFace=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphereHitIdempotent(t *testing.T) {
	sphere := testSphere(core.NewVec3(0.3, -0.2, -1.7), 0.6)
	ray := core.NewRay(core.NewVec3(0.1, 0.2, 0.3), core.NewVec3(0.05, -0.1, -1))

	first, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("expected hit, got miss")
	}
	second, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("expected hit on second call, got miss")
	}

	// Identical inputs must produce bit-identical results
	if first.T != second.T {
		t.Errorf("t differs between identical calls: %v != %v", first.T, second.T)
	}
	if first.Point != second.Point {
		t.Errorf("point differs between identical calls: %v != %v", first.Point, second.Point)
	}
}

func TestSphereHitRangeClipping(t *testing.T) {
	sphere := testSphere(core.NewVec3(0, 0, -2), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Near root at t=1.5, far root at t=2.5
	if hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1)); !isHit || math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("expected near root t=1.5, got hit=%v", isHit)
	}

	// Excluding the near root falls back to the far root
	if hit, isHit := sphere.Hit(ray, 2.0, math.Inf(1)); !isHit || math.Abs(hit.T-2.5) > 1e-9 {
		t.Errorf("expected far root t=2.5, got hit=%v", isHit)
	}

	// Both roots outside the range is a miss
	if _, isHit := sphere.Hit(ray, 0.001, 1.0); isHit {
		t.Error("expected miss when both roots exceed tMax")
	}
	if _, isHit := sphere.Hit(ray, 3.0, math.Inf(1)); isHit {
		t.Error("expected miss when both roots are below tMin")
	}
}
