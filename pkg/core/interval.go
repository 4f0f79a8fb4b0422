package core

import "math"

// shadowAcneEpsilon is the single t_min used to restart every recursive ray
// so a hit point never re-intersects the surface it just left. One constant
// is named and used everywhere rather than scattering ad hoc epsilons
// across call sites (see DESIGN.md "Open Question decisions").
const shadowAcneEpsilon = 1e-5

// ShadowAcneEpsilon is exported so integrators and lights constructing shadow
// rays agree on the same bias.
const ShadowAcneEpsilon = shadowAcneEpsilon

// Interval represents a closed-ish range [Min, Max] over the reals, used for
// the valid-t range of a ray and for AABB axis extents.
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval returns an interval that contains nothing.
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// UniverseInterval returns an interval that contains everything.
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Size returns the width of the interval.
func (iv Interval) Size() float64 {
	return iv.Max - iv.Min
}

// Contains reports whether x lies in the interval, inclusive of both ends.
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

// Surrounds reports whether x lies strictly inside the interval.
func (iv Interval) Surrounds(x float64) bool {
	return iv.Min < x && x < iv.Max
}

// Clamp returns x restricted to the interval.
func (iv Interval) Clamp(x float64) float64 {
	return math.Max(iv.Min, math.Min(iv.Max, x))
}

// Expand returns an interval widened by delta in total (delta/2 on each
// side).
func (iv Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: iv.Min - padding, Max: iv.Max + padding}
}

// Union returns the smallest interval containing both intervals.
func (iv Interval) Union(other Interval) Interval {
	return Interval{Min: math.Min(iv.Min, other.Min), Max: math.Max(iv.Max, other.Max)}
}
