package scheduler

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesseloak/lumenforge/pkg/camera"
	"github.com/kesseloak/lumenforge/pkg/core"
)

// constantIntegrator always returns a fixed color, independent of ray/depth,
// isolating the scheduler's visitation/tonemap behavior from the real
// path tracer.
type constantIntegrator struct{ color core.Color }

func (c constantIntegrator) RayColor(ray core.Ray, scene *core.Scene, depth int, sampler core.Sampler) core.Color {
	return c.color
}

// recordingSink captures every (i,j) it was asked to write, guarded by a
// mutex since the parallel scheduler may call concurrently.
type recordingSink struct {
	mu     sync.Mutex
	inited bool
	pixels map[[2]int]core.Color
}

func newRecordingSink() *recordingSink {
	return &recordingSink{pixels: make(map[[2]int]core.Color)}
}

func (s *recordingSink) Init(bitDepth int) error {
	s.inited = true
	return nil
}

func (s *recordingSink) Write(i, j int, color core.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pixels[[2]int{i, j}] = color
	return nil
}

func testCamera(width, height, spp int) *camera.Camera {
	return camera.New(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40, float64(width)/float64(height), width, 0, 10, spp, 5)
}

func TestRunSingleThreaded_VisitsEveryPixel(t *testing.T) {
	cam := testCamera(8, 8, 1)
	sink := newRecordingSink()
	scene := &core.Scene{Background: core.SolidBackground{Color: core.NewVec3(1, 0, 0)}}

	err := RunSingleThreaded(cam, constantIntegrator{color: core.NewVec3(0.5, 0.5, 0.5)}, scene, sink, Params{GlobalSeed: 42})
	require.NoError(t, err)
	assert.True(t, sink.inited)
	assert.Equal(t, cam.ImageWidth*cam.ImageHeight, len(sink.pixels))
}

func TestRunParallel_VisitsEveryPixel(t *testing.T) {
	cam := testCamera(8, 16, 1)
	sink := newRecordingSink()
	scene := &core.Scene{Background: core.SolidBackground{Color: core.NewVec3(0, 1, 0)}}

	err := RunParallel(cam, constantIntegrator{color: core.NewVec3(0.2, 0.2, 0.2)}, scene, sink, Params{GlobalSeed: 7, BandRows: 3, WorkerCount: 4})
	require.NoError(t, err)
	assert.Equal(t, cam.ImageWidth*cam.ImageHeight, len(sink.pixels))
}

func TestRunSingleThreaded_CancellationStopsEarly(t *testing.T) {
	cam := testCamera(4, 100, 1)
	sink := newRecordingSink()
	scene := &core.Scene{Background: core.SolidBackground{}}

	cancel := make(chan struct{})
	close(cancel)

	err := RunSingleThreaded(cam, constantIntegrator{}, scene, sink, Params{Cancel: cancel})
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Less(t, len(sink.pixels), cam.ImageWidth*cam.ImageHeight)
}

func TestTonemap_ClampsAndGammaCorrects(t *testing.T) {
	c := tonemap(core.NewVec3(4.0, 0.25, -1))
	assert.Equal(t, 1.0, c.X)
	assert.InDelta(t, 0.5, c.Y, 1e-9)
	assert.Equal(t, 0.0, c.Z)
}
