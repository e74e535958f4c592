package scene

import (
	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/geometry"
)

// Scene is an ordered, append-only collection of spheres. Once frozen it
// is immutable and safe to read from any number of render workers.
type Scene struct {
	spheres []*geometry.Sphere
	frozen  bool
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a sphere to the scene. Panics if the scene has been frozen:
// mutating a scene that render workers may be reading is a programming
// error, not a recoverable condition.
func (s *Scene) Add(sphere *geometry.Sphere) {
	if s.frozen {
		panic("scene: Add called on a frozen scene")
	}
	s.spheres = append(s.spheres, sphere)
}

// Freeze marks the scene read-only. The renderer freezes the scene when
// it takes ownership; callers may also freeze explicitly.
func (s *Scene) Freeze() {
	s.frozen = true
}

// PrimitiveCount returns the number of spheres in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.spheres)
}

// Hit implements core.Hittable with a linear scan over all spheres,
// shrinking tMax to the closest hit found so far.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, sphere := range s.spheres {
		if hit, ok := sphere.Hit(ray, tMin, closestSoFar); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}
