// Package texture implements the core.Texture variants consumed by
// materials: solid colors, checkers, raster images, gradients, Perlin/
// marble noise, and the normal/bump encodings a material decodes into
// shading perturbations.
package texture

import "github.com/kesseloak/lumenforge/pkg/core"

// Solid is a constant-color texture.
type Solid struct {
	Color core.Color
}

// NewSolid creates a solid-color texture.
func NewSolid(c core.Color) *Solid {
	return &Solid{Color: c}
}

// Value returns the constant color regardless of (u,v,p).
func (s *Solid) Value(u, v float64, p core.Vec3) core.Color {
	return s.Color
}
