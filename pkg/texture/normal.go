package texture

import "github.com/kesseloak/lumenforge/pkg/core"

// Normal decodes an RGB-encoded normal map (as produced by most authoring
// tools: each channel in [0,1] maps to a tangent-space component in
// [-1,1]) into a unit vec3. The decoded vector is returned packed back
// into a Color; the consuming material (not this texture) interprets it
// as a tangent-space perturbation.
type Normal struct {
	Source core.Texture
}

// NewNormal wraps a source texture (typically an Image) as a normal map.
func NewNormal(source core.Texture) *Normal {
	return &Normal{Source: source}
}

// Value decodes the source's encoded color via 2*c-1 and renormalizes.
func (n *Normal) Value(u, v float64, p core.Vec3) core.Color {
	encoded := n.Source.Value(u, v, p)
	decoded := core.NewVec3(2*encoded.X-1, 2*encoded.Y-1, 2*encoded.Z-1)
	return decoded.Normalize()
}

// Bump supplies a scalar height field; Gradient returns the (du, dv) slope
// used to perturb a shading normal. Height is read from the luminance of
// Source so any existing texture (including a noise texture) can double
// as a bump map.
type Bump struct {
	Source   core.Texture
	Strength float64
}

// NewBump wraps source as a bump map with the given perturbation strength.
func NewBump(source core.Texture, strength float64) *Bump {
	return &Bump{Source: source, Strength: strength}
}

// Height returns the scalar height at (u,v,p), the luminance of Source.
func (b *Bump) Height(u, v float64, p core.Vec3) float64 {
	return b.Source.Value(u, v, p).Luminance()
}

// Gradient estimates (dHeight/du, dHeight/dv) by central differences, scaled
// by Strength, for the material to fold into its shading normal.
func (b *Bump) Gradient(u, v float64, p core.Vec3) (du, dv float64) {
	const eps = 1e-3
	hu1 := b.Height(u+eps, v, p)
	hu0 := b.Height(u-eps, v, p)
	hv1 := b.Height(u, v+eps, p)
	hv0 := b.Height(u, v-eps, p)

	du = b.Strength * (hu1 - hu0) / (2 * eps)
	dv = b.Strength * (hv1 - hv0) / (2 * eps)
	return du, dv
}

// Value satisfies core.Texture by returning the raw height replicated across
// channels, so a Bump can also be composed as a plain source texture.
func (b *Bump) Value(u, v float64, p core.Vec3) core.Color {
	h := b.Height(u, v, p)
	return core.NewVec3(h, h, h)
}
