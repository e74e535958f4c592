package material

import (
	"testing"

	"github.com/df07/go-strip-raytracer/pkg/core"
)

func TestLambertianScatter(t *testing.T) {
	albedo := core.NewVec3(0.1, 0.2, 0.5)
	mat := NewLambertian(albedo)
	rng := core.NewRng(42)

	hit := &core.HitRecord{
		Point:     core.NewVec3(0, 0, -1),
		Normal:    core.NewVec3(0, 0, 1),
		T:         1.0,
		FrontFace: true,
		Material:  mat,
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, ok := mat.Scatter(rng, rayIn, hit)
		if !ok {
			t.Fatal("lambertian never absorbs")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("attenuation = %v, want albedo %v", scatter.Attenuation, albedo)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("scattered origin = %v, want hit point %v", scatter.Scattered.Origin, hit.Point)
		}
		if scatter.Scattered.Direction.NearZero() {
			t.Fatal("scattered direction is degenerate")
		}
	}
}
