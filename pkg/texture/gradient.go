package texture

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// GradientAxis selects which texture coordinate a Gradient interpolates
// across.
type GradientAxis int

const (
	GradientAxisU GradientAxis = iota
	GradientAxisV
)

// ColorSpace selects the interpolation space a Gradient blends in.
type ColorSpace int

const (
	ColorSpaceRGB ColorSpace = iota
	ColorSpaceHSV
)

// Gradient linearly interpolates between two colors across one texture
// axis. Interpolation happens either directly in RGB or by converting
// through HSV first (so e.g. a sky gradient can sweep hue).
type Gradient struct {
	From, To core.Color
	Axis     GradientAxis
	Space    ColorSpace
}

// NewGradient builds a gradient from From (t=0) to To (t=1) across axis.
func NewGradient(from, to core.Color, axis GradientAxis, space ColorSpace) *Gradient {
	return &Gradient{From: from, To: to, Axis: axis, Space: space}
}

// Value interpolates between From and To by the selected axis coordinate,
// clamped to [0,1].
func (g *Gradient) Value(u, v float64, p core.Vec3) core.Color {
	t := u
	if g.Axis == GradientAxisV {
		t = v
	}
	t = math.Max(0, math.Min(1, t))

	if g.Space == ColorSpaceHSV {
		return hsvLerp(g.From, g.To, t)
	}
	return g.From.Multiply(1 - t).Add(g.To.Multiply(t))
}

func hsvLerp(from, to core.Color, t float64) core.Color {
	h1, s1, v1 := rgbToHSV(from)
	h2, s2, v2 := rgbToHSV(to)

	dh := h2 - h1
	switch {
	case dh > 180:
		dh -= 360
	case dh < -180:
		dh += 360
	}
	h := math.Mod(h1+dh*t+360, 360)
	s := s1 + (s2-s1)*t
	v := v1 + (v2-v1)*t
	return hsvToRGB(h, s, v)
}

func rgbToHSV(c core.Color) (h, s, v float64) {
	maxC := math.Max(c.X, math.Max(c.Y, c.Z))
	minC := math.Min(c.X, math.Min(c.Y, c.Z))
	delta := maxC - minC

	v = maxC
	if maxC > 0 {
		s = delta / maxC
	}
	if delta == 0 {
		return 0, s, v
	}

	switch maxC {
	case c.X:
		h = 60 * math.Mod((c.Y-c.Z)/delta, 6)
	case c.Y:
		h = 60 * ((c.Z-c.X)/delta + 2)
	default:
		h = 60 * ((c.X-c.Y)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

func hsvToRGB(h, s, v float64) core.Color {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return core.NewVec3(r+m, g+m, b+m)
}
