package renderer

import (
	"math"

	"github.com/df07/go-strip-raytracer/pkg/core"
)

// Camera generates primary rays for image pixels, including anti-aliasing
// jitter and defocus-disk lens sampling for depth of field
type Camera struct {
	center       core.Vec3
	pixel00Loc   core.Vec3 // World location of pixel (0, 0)
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusAngle float64   // Lens aperture angle in degrees (0 = pinhole)
	defocusDiskU core.Vec3 // Defocus disk horizontal radius vector
	defocusDiskV core.Vec3 // Defocus disk vertical radius vector
}

// NewCamera builds camera geometry from the render configuration and the
// derived image dimensions
func NewCamera(cfg Config, width, height int) *Camera {
	center := cfg.LookFrom

	// Viewport dimensions from vertical field of view and focus distance
	theta := degreesToRadians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDist
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Orthonormal basis for camera orientation
	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	viewportUpperLeft := center.
		Subtract(w.Multiply(cfg.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDist * math.Tan(degreesToRadians(cfg.DefocusAngle/2))

	return &Camera{
		center:       center,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusAngle: cfg.DefocusAngle,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// GetRay generates a ray for pixel (i, j), jittered within the pixel for
// box-filter anti-aliasing and originating on the defocus disk when depth
// of field is enabled
func (c *Camera) GetRay(rng *core.Rng, i, j int) core.Ray {
	offsetX := rng.Float64() - 0.5
	offsetY := rng.Float64() - 0.5

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.defocusAngle > 0 {
		origin = c.defocusDiskSample(rng)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random origin on the camera's lens disk
func (c *Camera) defocusDiskSample(rng *core.Rng) core.Vec3 {
	p := core.RandomInUnitDisk(rng)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
