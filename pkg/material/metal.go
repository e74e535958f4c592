package material

import (
	"github.com/df07/go-strip-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the core.Material interface for metal scattering
func (m *Metal) Scatter(rng *core.Rng, rayIn core.Ray, hit *core.HitRecord) (core.ScatterRecord, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal)
	reflected = reflected.Normalize().Add(core.RandomUnitVector(rng).Multiply(m.Fuzz))

	// Absorb rays that the fuzz perturbation pushed below the surface
	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterRecord{}, false
	}

	return core.ScatterRecord{
		Attenuation: m.Albedo,
		Scattered:   core.NewRay(hit.Point, reflected),
	}, true
}
