package render

import "github.com/kesseloak/lumenforge/pkg/core"

// Stats is Render's return value on every non-validation-error outcome,
// including a cancelled run, which returns partial stats alongside
// ErrCancelled.
type Stats struct {
	ImageWidth, ImageHeight int
	// Cancelled is true only when Render returned ErrCancelled; Counters
	// still reflects whatever work completed before the cancellation was
	// observed.
	Cancelled bool
	// Counters mirrors core.RenderContext's Stats: every suppressed
	// sample, excluded primitive, pass-through bounce, and Russian-roulette
	// kill is counted here rather than failing silently.
	Counters core.Stats
}
