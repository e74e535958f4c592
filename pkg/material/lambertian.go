package material

import (
	"github.com/df07/go-strip-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the core.Material interface for lambertian scattering
func (l *Lambertian) Scatter(rng *core.Rng, rayIn core.Ray, hit *core.HitRecord) (core.ScatterRecord, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(rng))

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterRecord{
		Attenuation: l.Albedo,
		Scattered:   core.NewRay(hit.Point, scatterDirection),
	}, true
}
