package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the nearest intersection strictly inside (tMin, tMax),
	// or false if the ray misses
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Material scatters an incoming ray at a surface hit. The bool result is
// false when the ray is absorbed.
type Material interface {
	Scatter(rng *Rng, rayIn Ray, hit *HitRecord) (ScatterRecord, bool)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always opposing the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The outward normal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterRecord contains the result of material scattering
type ScatterRecord struct {
	Attenuation Vec3 // Color attenuation applied to the scattered path
	Scattered   Ray  // The scattered ray
}
