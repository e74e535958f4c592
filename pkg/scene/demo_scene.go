package scene

import (
	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/geometry"
	"github.com/df07/go-strip-raytracer/pkg/material"
	"github.com/df07/go-strip-raytracer/pkg/renderer"
)

// NewDemoScene builds the five-sphere demo scene: a diffuse ground and
// center sphere, a hollow glass sphere (outer shell plus an air bubble),
// and a fuzzy metal sphere. Returns the scene together with its intended
// camera configuration.
func NewDemoScene() (*Scene, renderer.Config) {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5)
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s := NewScene()
	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center))
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass))
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble))
	s.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metal))

	cfg := renderer.DefaultConfig()
	cfg.VFov = 20
	cfg.LookFrom = core.NewVec3(-2, 2, 1)
	cfg.LookAt = core.NewVec3(0, 0, -1)
	cfg.VUp = core.NewVec3(0, 1, 0)
	cfg.DefocusAngle = 0
	cfg.FocusDist = 3.4

	return s, cfg
}
