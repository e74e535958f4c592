package integrator

import (
	"math"

	"github.com/df07/go-strip-raytracer/pkg/core"
)

// tMinEpsilon keeps scattered rays from re-hitting their own origin
// surface due to floating-point error (shadow acne)
const tMinEpsilon = 0.001

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracer evaluates ray colors by recursive Monte-Carlo path tracing
type PathTracer struct {
	MaxDepth int // Maximum ray bounce depth
}

// NewPathTracer creates a path tracer with the given bounce budget
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor returns the color seen along a ray in the given world
func (pt *PathTracer) RayColor(rng *core.Rng, ray core.Ray, world core.Hittable) core.Vec3 {
	return pt.rayColor(rng, ray, world, pt.MaxDepth)
}

func (pt *PathTracer) rayColor(rng *core.Rng, ray core.Ray, world core.Hittable, depth int) core.Vec3 {
	// Bounce budget exhausted: no more light gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	if hit, ok := world.Hit(ray, tMinEpsilon, math.Inf(1)); ok {
		scatter, ok := hit.Material.Scatter(rng, ray, hit)
		if !ok {
			// Ray absorbed
			return core.Vec3{}
		}
		return scatter.Attenuation.MultiplyVec(pt.rayColor(rng, scatter.Scattered, world, depth-1))
	}

	return SkyGradient(ray.Direction)
}

// SkyGradient returns the background color for a ray direction: a linear
// blend from white at the horizon to sky blue overhead
func SkyGradient(direction core.Vec3) core.Vec3 {
	unit := direction.Normalize()
	a := 0.5 * (unit.Y + 1.0)
	return white.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}
