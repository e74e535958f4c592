package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/nfnt/resize"

	"github.com/df07/go-strip-raytracer/pkg/renderer"
	"github.com/df07/go-strip-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "demo", "Scene type: 'demo' or 'cover'")
	width := flag.Int("width", 400, "Image width in pixels")
	workers := flag.Int("workers", 4, "Number of strip render workers")
	seed := flag.Uint64("seed", 42, "Base RNG seed")
	duration := flag.Duration("duration", 10*time.Second, "Total rendering time")
	tick := flag.Duration("tick", 250*time.Millisecond, "Time budget per render tick")
	thumbWidth := flag.Uint("thumb-width", 0, "Thumbnail width in pixels (0 = no thumbnail)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Progressive Strip Raytracer")
		fmt.Println("Usage: strip-raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  demo  - Five-sphere scene with glass, metal and diffuse materials")
		fmt.Println("  cover - Randomized sphere field with depth of field")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	logger := renderer.NewDefaultLogger()

	var world *scene.Scene
	var cfg renderer.Config
	switch *sceneType {
	case "cover":
		world, cfg = scene.NewCoverScene(*seed)
	case "demo":
		world, cfg = scene.NewDemoScene()
	default:
		logger.Printf("Unknown scene type: %s. Using demo scene.\n", *sceneType)
		world, cfg = scene.NewDemoScene()
		*sceneType = "demo"
	}
	cfg.Width = *width
	cfg.Workers = *workers
	cfg.Seed = *seed

	r, err := renderer.New(world, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating renderer: %v\n", err)
		os.Exit(1)
	}
	defer r.Close()

	logger.Printf("Rendering %dx%d with %d workers (%d spheres) for %v...\n",
		r.Width(), r.Height(), *workers, world.PrimitiveCount(), *duration)

	start := time.Now()
	for time.Since(start) < *duration {
		stats := r.Render(time.Now().Add(*tick))
		logger.Printf("Tick: %d/%d passes complete in %v (per strip: %v)\n",
			stats.CompletedPasses, stats.TargetPasses, stats.Elapsed, stats.StripPasses)
	}

	img := r.Snapshot()

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	outputPath := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := savePNG(outputPath, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Saved render to %s\n", outputPath)

	if *thumbWidth > 0 {
		thumb := resize.Resize(*thumbWidth, 0, img, resize.Lanczos3)
		thumbPath := filepath.Join(outputDir, fmt.Sprintf("render_%s_thumb.png", timestamp))
		if err := savePNG(thumbPath, thumb); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving thumbnail: %v\n", err)
			os.Exit(1)
		}
		logger.Printf("Saved thumbnail to %s\n", thumbPath)
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
