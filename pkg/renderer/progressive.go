package renderer

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains the full render configuration
type Config struct {
	Width        int       // Image width in pixels
	AspectRatio  float64   // Width / height; height is derived, minimum 1
	MaxDepth     int       // Maximum ray bounce depth
	VFov         float64   // Vertical field of view in degrees
	LookFrom     core.Vec3 // Camera position
	LookAt       core.Vec3 // Point the camera looks at
	VUp          core.Vec3 // Camera-relative up direction
	DefocusAngle float64   // Lens aperture angle in degrees (0 = pinhole)
	FocusDist    float64   // Distance to the plane of perfect focus
	Workers      int       // Number of strip workers (1..Width)
	Seed         uint64    // Base seed for the per-worker RNG streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:        400,
		AspectRatio:  16.0 / 9.0,
		MaxDepth:     50,
		VFov:         20,
		LookFrom:     core.NewVec3(-2, 2, 1),
		LookAt:       core.NewVec3(0, 0, -1),
		VUp:          core.NewVec3(0, 1, 0),
		DefocusAngle: 0,
		FocusDist:    3.4,
		Workers:      4,
		Seed:         42,
	}
}

// stripWorker pairs a strip with its rendezvous channels. Both channels
// are unbuffered: the coordinator blocks until the worker is ready to
// take a request, and the worker blocks until the coordinator collects
// its report.
type stripWorker struct {
	strip    *Strip
	requests chan int // Pass target from the coordinator
	reports  chan int // Completed pass count back to the coordinator
}

// Renderer coordinates progressive rendering across one worker goroutine
// per vertical image strip. A call to Render performs one time-boxed
// coordination tick; between ticks the workers are parked on their
// request channels.
type Renderer struct {
	config  Config
	width   int
	height  int
	camera  *Camera
	world   core.Hittable
	tracer  *integrator.PathTracer
	workers []*stripWorker
	logger  core.Logger

	paused       atomic.Bool // Advisory pause flag, checked once per row
	passesWanted int         // Pass target for the next tick
	wg           sync.WaitGroup
	closed       bool
}

// New creates a renderer for the given world. The world is frozen if it
// supports freezing; it must not be mutated afterwards.
func New(world core.Hittable, cfg Config, logger core.Logger) (*Renderer, error) {
	if cfg.Width < 1 {
		return nil, fmt.Errorf("renderer: image width must be at least 1, got %d", cfg.Width)
	}
	if cfg.AspectRatio <= 0 {
		return nil, fmt.Errorf("renderer: aspect ratio must be positive, got %g", cfg.AspectRatio)
	}
	if cfg.Workers < 1 || cfg.Workers > cfg.Width {
		return nil, fmt.Errorf("renderer: worker count must be in [1, %d], got %d", cfg.Width, cfg.Workers)
	}
	if cfg.MaxDepth < 1 {
		return nil, fmt.Errorf("renderer: max depth must be at least 1, got %d", cfg.MaxDepth)
	}

	height := int(float64(cfg.Width) / cfg.AspectRatio)
	if height < 1 {
		height = 1
	}

	// The scene must not change once workers can read it
	if f, ok := world.(interface{ Freeze() }); ok {
		f.Freeze()
	}

	if logger == nil {
		logger = NewDefaultLogger()
	}

	r := &Renderer{
		config:       cfg,
		width:        cfg.Width,
		height:       height,
		camera:       NewCamera(cfg, cfg.Width, height),
		world:        world,
		tracer:       integrator.NewPathTracer(cfg.MaxDepth),
		logger:       logger,
		passesWanted: 1,
	}

	// Partition the image into vertical strips. Boundaries are placed at
	// i*Width/Workers, so strip widths differ by at most one column.
	for i := 0; i < cfg.Workers; i++ {
		x0 := i * cfg.Width / cfg.Workers
		x1 := (i + 1) * cfg.Width / cfg.Workers
		rng := core.NewRng(cfg.Seed + uint64(i))
		r.workers = append(r.workers, &stripWorker{
			strip:    newStrip(x0, x1-x0, height, rng),
			requests: make(chan int),
			reports:  make(chan int),
		})
	}

	for _, w := range r.workers {
		r.wg.Add(1)
		go r.runWorker(w)
	}

	return r, nil
}

// Width returns the image width in pixels
func (r *Renderer) Width() int { return r.width }

// Height returns the image height in pixels
func (r *Renderer) Height() int { return r.height }

// Strips returns the renderer's strips for presentation-layer readback
func (r *Renderer) Strips() []*Strip {
	strips := make([]*Strip, len(r.workers))
	for i, w := range r.workers {
		strips[i] = w.strip
	}
	return strips
}

// runWorker is the per-strip render loop. Each request starts the worker
// rendering rows until the pause flag is observed; the pass target is
// tracked by the coordinator, so fast strips keep accumulating extra
// passes until the deadline. At least one row is rendered per request,
// so a tick with an already-expired deadline still makes progress.
func (r *Renderer) runWorker(w *stripWorker) {
	defer r.wg.Done()

	for range w.requests {
		for {
			w.strip.renderRow(r.camera, r.world, r.tracer)
			if r.paused.Load() {
				break
			}
		}
		w.reports <- w.strip.renderPasses
	}
}

// Render performs one coordination tick: issue the current pass target to
// every worker, sleep until the deadline, pause the workers, and collect
// their completed pass counts. The target advances only once every strip
// has reached it, so a slow strip throttles the announced pass count but
// never blocks the others from accumulating within the tick.
func (r *Renderer) Render(deadline time.Time) RenderStats {
	start := time.Now()

	// Rendezvous send: blocks until each worker is parked at its request
	// channel, which guarantees the previous tick's pause is fully drained
	for _, w := range r.workers {
		w.requests <- r.passesWanted
	}

	if d := time.Until(deadline); d > 0 {
		time.Sleep(d)
	}

	r.paused.Store(true)

	stats := RenderStats{
		TargetPasses: r.passesWanted,
		StripPasses:  make([]int, len(r.workers)),
	}
	minPasses := -1
	for i, w := range r.workers {
		p := <-w.reports
		stats.StripPasses[i] = p
		if minPasses < 0 || p < minPasses {
			minPasses = p
		}
	}

	if minPasses >= r.passesWanted {
		r.passesWanted++
	}

	r.paused.Store(false)

	stats.CompletedPasses = minPasses
	stats.Elapsed = time.Since(start)
	return stats
}

// Snapshot assembles the current display buffers of all strips into a
// full RGBA image. Each strip is copied under its own lock, so rows are
// always consistent; call between ticks or during one for a live preview.
func (r *Renderer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for _, w := range r.workers {
		w.strip.blitTo(img)
	}
	return img
}

// Close shuts down the worker goroutines. Must not be called concurrently
// with Render; after Close the renderer cannot be reused.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	for _, w := range r.workers {
		close(w.requests)
	}
	r.wg.Wait()
}
