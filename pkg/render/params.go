package render

// Params carries the per-invocation configuration Render validates and
// schedules with. Image width, aspect ratio, samples per pixel, and max
// depth are already baked into the *camera.Camera passed to
// Render (a Camera derives its stratified grid dimension at construction
// time); Params itself carries only the scheduling and reporting knobs that
// sit outside the camera/scene value.
type Params struct {
	// Quiet is not read by Render, which emits no progress logging of its
	// own; it is carried for the caller's use.
	Quiet bool
	// SavePath is not read by Render and is not passed on to the sink; the
	// core never opens files.
	SavePath string
	// Cancel, when non-nil, is polled between rows/bands; see
	// pkg/scheduler.Params.Cancel.
	Cancel <-chan struct{}
	// WorkerCount selects RunParallel with this many goroutines when > 1,
	// RunSingleThreaded when <= 1.
	WorkerCount int
	// BandRows is the row-band size RunParallel partitions the image into.
	// Defaults to 1 when <= 0.
	BandRows int
	// GlobalSeed seeds every worker's per-band RNG so a run at a fixed seed
	// and worker count is bit-reproducible.
	GlobalSeed int64
}
