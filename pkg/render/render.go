// Package render exposes the single entry point the rest of this module
// builds toward: Render(scene, camera, params, sink, logger) -> (Stats, error). It
// validates invalid parameters before any work starts, wires the scheduler
// and integrator together, and translates a cancelled run into a distinct
// outcome rather than an error.
package render

import (
	"errors"

	"github.com/kesseloak/lumenforge/pkg/camera"
	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/integrator"
	"github.com/kesseloak/lumenforge/pkg/scheduler"
)

// ErrCancelled is returned when params.Cancel fires before the image
// completes; it is a distinct outcome, not a failure.
var ErrCancelled = scheduler.ErrCancelled

// Render runs the path tracer over scene through cam, reporting every
// completed pixel to sink, and returns the accumulated Stats. A validation
// failure (zero/negative image dimensions, non-positive sample count,
// negative max depth, a nil scene root) is returned as a *Error with
// KindInvalidScene before any pixel is rendered.
func Render(scene *core.Scene, cam *camera.Camera, params Params, sink scheduler.Sink, logger core.Logger) (Stats, error) {
	if err := validate(scene, cam); err != nil {
		return Stats{}, invalidSceneError(err)
	}

	ctx := core.NewRenderContext(logger)
	if scene.ExcludedPrimitives > 0 {
		ctx.Stats.AddExcludedPrimitives(scene.ExcludedPrimitives)
	}
	tracer := integrator.New(ctx)

	schedParams := scheduler.Params{
		GlobalSeed:  params.GlobalSeed,
		BandRows:    params.BandRows,
		WorkerCount: params.WorkerCount,
		Cancel:      params.Cancel,
	}

	var err error
	if params.WorkerCount > 1 {
		err = scheduler.RunParallel(cam, tracer, scene, sink, schedParams)
	} else {
		err = scheduler.RunSingleThreaded(cam, tracer, scene, sink, schedParams)
	}

	stats := Stats{Counters: ctx.Stats.Snapshot(), ImageWidth: cam.ImageWidth, ImageHeight: cam.ImageHeight}

	switch {
	case err == nil:
		return stats, nil
	case errors.Is(err, scheduler.ErrCancelled):
		stats.Cancelled = true
		return stats, ErrCancelled
	default:
		return stats, ioError(err)
	}
}

func validate(scene *core.Scene, cam *camera.Camera) error {
	if scene == nil || scene.Root == nil {
		return errors.New("scene has no root hittable")
	}
	if cam == nil {
		return errors.New("camera is nil")
	}
	if cam.ImageWidth <= 0 {
		return errors.New("image width must be positive")
	}
	if cam.ImageHeight <= 0 {
		return errors.New("image height must be positive")
	}
	if cam.SamplesPerPixel <= 0 {
		return errors.New("samples per pixel must be positive")
	}
	if cam.MaxDepth < 0 {
		return errors.New("max depth must be non-negative")
	}
	return nil
}
