package renderer

import (
	"image"
	"math"
	"sync"

	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/integrator"
)

// Strip owns one contiguous vertical slice of the image. The color
// accumulator and row cursor belong exclusively to the strip's render
// worker; the RGBA display buffer is shared with readers through a mutex
// held only while a row's bytes are written or copied out.
type Strip struct {
	offsetX int // Horizontal offset of this strip in the full image
	width   int
	height  int

	rng          *core.Rng
	accum        []core.Vec3 // Running per-pixel color sums, row-major
	renderPasses int         // Completed full-strip passes
	startRow     int         // Cursor for the in-progress pass

	mu     sync.Mutex
	pixels []byte // RGBA display buffer, 4 bytes per pixel
}

func newStrip(offsetX, width, height int, rng *core.Rng) *Strip {
	return &Strip{
		offsetX: offsetX,
		width:   width,
		height:  height,
		rng:     rng,
		accum:   make([]core.Vec3, width*height),
		pixels:  make([]byte, 4*width*height),
	}
}

// OffsetX returns the strip's horizontal offset in the full image
func (s *Strip) OffsetX() int { return s.offsetX }

// Width returns the strip width in pixels
func (s *Strip) Width() int { return s.width }

// Height returns the strip height in pixels
func (s *Strip) Height() int { return s.height }

// CopyPixels returns a copy of the strip's current RGBA display buffer.
// The copy is taken under the strip lock, so it never observes a
// partially written pixel row.
func (s *Strip) CopyPixels() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.pixels))
	copy(out, s.pixels)
	return out
}

// CompletedPasses returns the number of full passes accumulated so far.
// Only meaningful while the strip's worker is paused or idle.
func (s *Strip) CompletedPasses() int { return s.renderPasses }

// renderRow casts one ray per pixel of the current row, adds the results
// into the accumulator, and publishes the normalized row to the display
// buffer. Advances the row cursor, wrapping at the bottom of the strip.
func (s *Strip) renderRow(camera *Camera, world core.Hittable, tracer *integrator.PathTracer) {
	y := s.startRow
	row := s.accum[y*s.width : (y+1)*s.width]

	for x := range row {
		ray := camera.GetRay(s.rng, s.offsetX+x, y)
		row[x] = row[x].Add(tracer.RayColor(s.rng, ray, world))
	}

	// The row has just received its (renderPasses+1)-th sample
	s.publishRow(y, row, float64(s.renderPasses+1))

	s.startRow++
	if s.startRow == s.height {
		s.startRow = 0
		s.renderPasses++
	}
}

// publishRow converts one accumulator row to display bytes: divide by the
// pass count, gamma-correct (gamma 2), scale to [0, 255]. The whole row
// is written within a single lock hold so readers never see a torn pixel.
func (s *Strip) publishRow(y int, row []core.Vec3, passes float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := 4 * y * s.width
	for x, c := range row {
		p := s.pixels[base+4*x : base+4*x+4]
		p[0] = displayByte(c.X / passes)
		p[1] = displayByte(c.Y / passes)
		p[2] = displayByte(c.Z / passes)
		p[3] = 255
	}
}

// blitTo copies the strip's display bytes into the full image at the
// strip's horizontal offset, under the strip lock
func (s *Strip) blitTo(img *image.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for y := 0; y < s.height; y++ {
		dst := img.Pix[y*img.Stride+4*s.offsetX:]
		src := s.pixels[4*y*s.width : 4*(y+1)*s.width]
		copy(dst, src)
	}
}

// displayByte maps a linear color channel to a gamma-corrected display byte
func displayByte(v float64) byte {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return byte(math.Sqrt(v) * 255.999)
}
