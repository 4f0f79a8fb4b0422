package texture

import (
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Checker alternates between two sub-textures by the parity of
// floor(invScale*x) + floor(invScale*y) + floor(invScale*z).
type Checker struct {
	InvScale float64
	Even, Odd core.Texture
}

// NewChecker builds a 3-D checker pattern with the given cell scale.
func NewChecker(scale float64, even, odd core.Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors is a convenience constructor over two solid colors.
func NewCheckerColors(scale float64, evenColor, oddColor core.Color) *Checker {
	return NewChecker(scale, NewSolid(evenColor), NewSolid(oddColor))
}

// Value selects Even or Odd by the parity of the floored, scaled sum of the
// point's coordinates.
func (c *Checker) Value(u, v float64, p core.Vec3) core.Color {
	sum := int64(math.Floor(c.InvScale*p.X)) +
		int64(math.Floor(c.InvScale*p.Y)) +
		int64(math.Floor(c.InvScale*p.Z))

	if sum%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
