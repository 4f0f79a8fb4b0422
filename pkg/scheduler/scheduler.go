package scheduler

import (
	"errors"
	"sync"

	"github.com/kesseloak/lumenforge/pkg/camera"
	"github.com/kesseloak/lumenforge/pkg/core"
)

// ErrCancelled is returned by Run/RunParallel when the cancellation token
// fires before the image completes; it is a distinct outcome, not a
// failure.
var ErrCancelled = errors.New("scheduler: cancelled")

// Integrator is the narrow capability a scheduler needs from
// pkg/integrator.PathTracer, kept as an interface so the scheduler doesn't
// import the integrator package back.
type Integrator interface {
	RayColor(ray core.Ray, scene *core.Scene, depth int, sampler core.Sampler) core.Color
}

// Params configures a scheduler run.
type Params struct {
	GlobalSeed int64
	// BandRows is the number of image rows per parallel work unit; must be
	// >= 1. Ignored by RunSingleThreaded.
	BandRows int
	// WorkerCount is the number of goroutines processing bands
	// concurrently. Defaults to runtime.GOMAXPROCS(0) when <= 0.
	WorkerCount int
	// Cancel, when non-nil, is polled between rows (single-threaded) or
	// bands (parallel); a closed channel aborts the remaining work.
	Cancel <-chan struct{}
}

// RunSingleThreaded visits every pixel in row-major scanline order,
// suitable for streaming straight to a sink.
func RunSingleThreaded(cam *camera.Camera, tracer Integrator, scene *core.Scene, sink Sink, params Params) error {
	if err := sink.Init(8); err != nil {
		return err
	}

	sampler := core.NewBandSampler(params.GlobalSeed, 0)
	n := cam.SqrtSamplesPerPixel()

	for j := 0; j < cam.ImageHeight; j++ {
		if cancelled(params.Cancel) {
			return ErrCancelled
		}
		for i := 0; i < cam.ImageWidth; i++ {
			color := renderPixel(cam, tracer, scene, i, j, n, sampler)
			if err := sink.Write(i, j, color); err != nil {
				return err
			}
		}
	}
	return nil
}

// RunParallel partitions the image into row-bands of params.BandRows rows
// and renders them concurrently across params.WorkerCount goroutines. Each
// band owns an RNG seeded from (bandID, GlobalSeed) so a run at a fixed
// worker count and seed is bit-reproducible; pixels within a band are
// still summed in stratified row-major order. The sink is called from at
// most one goroutine at a time.
func RunParallel(cam *camera.Camera, tracer Integrator, scene *core.Scene, sink Sink, params Params) error {
	if err := sink.Init(8); err != nil {
		return err
	}

	bandRows := params.BandRows
	if bandRows < 1 {
		bandRows = 1
	}
	workers := params.WorkerCount
	if workers < 1 {
		workers = defaultWorkerCount()
	}

	n := cam.SqrtSamplesPerPixel()
	bands := make(chan int, (cam.ImageHeight+bandRows-1)/bandRows)
	for start := 0; start < cam.ImageHeight; start += bandRows {
		bands <- start
	}
	close(bands)

	var (
		wg       sync.WaitGroup
		sinkMu   sync.Mutex
		firstErr error
		errOnce  sync.Once
		cancel   = params.Cancel
	)
	recordErr := func(err error) {
		errOnce.Do(func() { firstErr = err })
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for start := range bands {
				if cancelled(cancel) {
					recordErr(ErrCancelled)
					return
				}

				bandID := start / bandRows
				sampler := core.NewBandSampler(params.GlobalSeed, bandID)
				end := start + bandRows
				if end > cam.ImageHeight {
					end = cam.ImageHeight
				}

				for j := start; j < end; j++ {
					for i := 0; i < cam.ImageWidth; i++ {
						color := renderPixel(cam, tracer, scene, i, j, n, sampler)

						sinkMu.Lock()
						err := sink.Write(i, j, color)
						sinkMu.Unlock()
						if err != nil {
							recordErr(err)
							return
						}
					}
				}
			}
		}()
	}

	wg.Wait()
	return firstErr
}

func renderPixel(cam *camera.Camera, tracer Integrator, scene *core.Scene, i, j, n int, sampler core.Sampler) core.Color {
	var accum core.Color
	for sJ := 0; sJ < n; sJ++ {
		for sI := 0; sI < n; sI++ {
			ray := cam.GetRay(i, j, sI, sJ, sampler)
			accum = accum.Add(tracer.RayColor(ray, scene, cam.MaxDepth, sampler))
		}
	}

	spp := float64(n * n)
	return tonemap(accum.Multiply(1.0 / spp))
}

// tonemap clamps to [0,1] and applies gamma-2 correction.
func tonemap(c core.Color) core.Color {
	return c.Clamp(0, 1).GammaCorrect(2)
}

func cancelled(token <-chan struct{}) bool {
	if token == nil {
		return false
	}
	select {
	case <-token:
		return true
	default:
		return false
	}
}
