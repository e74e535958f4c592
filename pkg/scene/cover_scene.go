package scene

import (
	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/geometry"
	"github.com/df07/go-strip-raytracer/pkg/material"
	"github.com/df07/go-strip-raytracer/pkg/renderer"
)

// NewCoverScene builds a randomized field of small diffuse, metal and
// glass spheres around three large ones, shot with depth of field. The
// layout is deterministic for a given seed.
func NewCoverScene(seed uint64) (*Scene, renderer.Config) {
	rng := core.NewRng(seed)

	s := NewScene()
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := core.NewVec3(
				float64(a)+0.9*rng.Float64(),
				0.2,
				float64(b)+0.9*rng.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(rng).MultiplyVec(randomColor(rng))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					rng.Float64Range(0.5, 1),
					rng.Float64Range(0.5, 1),
					rng.Float64Range(0.5, 1),
				)
				mat = material.NewMetal(albedo, rng.Float64Range(0, 0.5))
			default:
				mat = material.NewDielectric(1.5)
			}
			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	cfg := renderer.DefaultConfig()
	cfg.VFov = 20
	cfg.LookFrom = core.NewVec3(13, 2, 3)
	cfg.LookAt = core.NewVec3(0, 0, 0)
	cfg.VUp = core.NewVec3(0, 1, 0)
	cfg.DefocusAngle = 0.6
	cfg.FocusDist = 10

	return s, cfg
}

func randomColor(rng *core.Rng) core.Vec3 {
	return core.NewVec3(rng.Float64(), rng.Float64(), rng.Float64())
}
