package renderer

import "time"

// RenderStats describes the outcome of one coordination tick
type RenderStats struct {
	CompletedPasses int           // Passes every strip has fully accumulated
	TargetPasses    int           // Pass target that was issued for this tick
	StripPasses     []int         // Per-strip completed pass counts
	Elapsed         time.Duration // Wall-clock duration of the tick
}
