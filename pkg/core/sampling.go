package core

// RandomUnitVector generates a uniformly distributed unit vector by
// rejection-sampling the unit sphere and normalizing.
func RandomUnitVector(rng *Rng) Vec3 {
	for {
		p := NewVec3(
			rng.Float64Range(-1, 1),
			rng.Float64Range(-1, 1),
			rng.Float64Range(-1, 1),
		)
		lensq := p.LengthSquared()
		// Reject points outside the sphere and points so close to the
		// origin that normalizing would blow up.
		if 1e-160 < lensq && lensq <= 1.0 {
			return p.Multiply(1 / p.Length())
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk on the
// z=0 plane (used for defocus-disk lens sampling)
func RandomInUnitDisk(rng *Rng) Vec3 {
	for {
		p := NewVec3(rng.Float64Range(-1, 1), rng.Float64Range(-1, 1), 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
