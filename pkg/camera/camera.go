// Package camera implements a perspective pinhole camera: lookfrom/lookat/
// vup define the view basis, defocus_angle/focus_dist add thin-lens depth
// of field, and samples_per_pixel is rounded up to a perfect square for
// NxN stratified sampling.
package camera

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Camera holds the configuration and derived basis for perspective ray
// generation.
type Camera struct {
	LookFrom, LookAt, Up core.Vec3
	VFOV                 float64 // vertical field of view, degrees
	AspectRatio          float64
	ImageWidth           int
	DefocusAngle         float64 // full aperture angle, degrees; 0 disables defocus
	FocusDist            float64
	SamplesPerPixel      int
	MaxDepth             int
	TimeStart, TimeEnd   float64 // shutter opening window for motion blur

	ImageHeight int

	u, v, w                core.Vec3
	pixelDeltaU, pixelDeltaV core.Vec3
	pixel00Loc              core.Vec3
	defocusDiskU, defocusDiskV core.Vec3
	sqrtSpp                 int
	recipSqrtSpp             float64
}

// New builds and initializes a Camera, deriving the image height, basis
// vectors, pixel deltas, and defocus disk from the configuration fields.
func New(lookFrom, lookAt, up core.Vec3, vfov, aspectRatio float64, imageWidth int, defocusAngle, focusDist float64, samplesPerPixel, maxDepth int) *Camera {
	c := &Camera{
		LookFrom: lookFrom, LookAt: lookAt, Up: up,
		VFOV: vfov, AspectRatio: aspectRatio, ImageWidth: imageWidth,
		DefocusAngle: defocusAngle, FocusDist: focusDist,
		SamplesPerPixel: samplesPerPixel, MaxDepth: maxDepth,
		TimeEnd: 0,
	}
	c.initialize()
	return c
}

// WithShutter sets the ray-time opening window used for motion blur.
func (c *Camera) WithShutter(start, end float64) *Camera {
	c.TimeStart, c.TimeEnd = start, end
	return c
}

func (c *Camera) initialize() {
	c.ImageHeight = int(float64(c.ImageWidth) / c.AspectRatio)
	if c.ImageHeight < 1 {
		c.ImageHeight = 1
	}

	theta := c.VFOV * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * c.FocusDist
	viewportWidth := viewportHeight * (float64(c.ImageWidth) / float64(c.ImageHeight))

	c.w = c.LookFrom.Subtract(c.LookAt).Normalize()
	c.u = c.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Multiply(1.0 / float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Multiply(1.0 / float64(c.ImageHeight))

	viewportUpperLeft := c.LookFrom.
		Subtract(c.w.Multiply(c.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := c.FocusDist * math.Tan(c.DefocusAngle/2*math.Pi/180)
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	c.sqrtSpp = int(math.Ceil(math.Sqrt(float64(c.SamplesPerPixel))))
	if c.sqrtSpp < 1 {
		c.sqrtSpp = 1
	}
	c.recipSqrtSpp = 1.0 / float64(c.sqrtSpp)
}

// SqrtSamplesPerPixel returns the stratified grid dimension N, where the
// camera actually takes N*N samples per pixel.
func (c *Camera) SqrtSamplesPerPixel() int { return c.sqrtSpp }

// GetRay samples within the (sI, sJ) stratified sub-cell of pixel (i, j),
// optionally jittering the origin across the defocus disk, and assigns a
// uniformly random ray time within the shutter window.
func (c *Camera) GetRay(i, j, sI, sJ int, sampler core.Sampler) core.Ray {
	offset := c.sampleSquareStratified(sI, sJ, sampler)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.LookFrom
	if c.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}
	direction := pixelSample.Subtract(origin)

	time := c.TimeStart
	if c.TimeEnd > c.TimeStart {
		time = c.TimeStart + sampler.Get1D()*(c.TimeEnd-c.TimeStart)
	}

	return core.NewRayAtTime(origin, direction, time).WithPixel(i, j)
}

// sampleSquareStratified returns a random point within the (sI, sJ) cell of
// the NxN stratified grid over [-0.5, 0.5)^2.
func (c *Camera) sampleSquareStratified(sI, sJ int, sampler core.Sampler) core.Vec2 {
	px := (float64(sI)+sampler.Get1D())*c.recipSqrtSpp - 0.5
	py := (float64(sJ)+sampler.Get1D())*c.recipSqrtSpp - 0.5
	return core.NewVec2(px, py)
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.LookFrom.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
