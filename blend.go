package orbis

// Overlay is the photographic overlay blend of a detail value d over a base
// value b, both in [0,1]. Detail above the midpoint lightens the base, below
// darkens it; 0.5 is the identity point. The result is saturated.
func Overlay(d, b float64) float64 {
	if d > 0.5 {
		return Saturate(1 - (1-2*(d-0.5))*(1-b))
	}
	return Saturate(2 * d * b)
}

// OverlayColor applies Overlay with one scalar detail value across the RGB
// channels, leaving alpha untouched.
func OverlayColor(d float64, b Color) Color {
	return Color{Overlay(d, b.R), Overlay(d, b.G), Overlay(d, b.B), b.A}
}

// BlendStage is one entry of the ring detail chain: a sampled detail channel,
// a post-blend gain and the camera distance at which the stage has fully
// faded back to its input.
type BlendStage struct {
	Detail   float64
	Gain     float64
	Distance float64
}

// BlendChain runs overlay stages over base in order. Each stage overlays its
// detail value, applies its gain, then interpolates back toward the
// pre-stage color by the saturated distance ratio, so at or beyond the stage
// distance the stage contributes nothing.
func BlendChain(base Color, distance float64, stages []BlendStage) Color {
	c := base
	for _, s := range stages {
		ratio := SaturateRatio(distance, s.Distance)
		blended := OverlayColor(Saturate(s.Detail), c).MulScalar(s.Gain)
		c = blended.Lerp(c, ratio)
	}
	return c
}

// AlphaStage is one step of the alpha chain mirroring BlendChain on a detail
// texture's green channel.
func AlphaStage(detail, prev, ratio float64) float64 {
	return Lerp(Overlay(Saturate(detail), Saturate(prev)), prev, ratio)
}

// DustAlphaStage is the dust entry of the alpha chain: the overlay input is
// the dust green channel crossed with the second detail pass's green, and the
// result is scaled by the dust alpha gain. The darkening branch multiplies by
// the distance ratio outright instead of interpolating toward prev. That
// breaks the symmetry of the other stages but matches the shipped material;
// see DESIGN.md before "fixing" it.
func DustAlphaStage(detail, prev, gain, ratio float64) float64 {
	d := Saturate(detail)
	prev = Saturate(prev)
	if d > 0.5 {
		return Lerp(Saturate((1-(1-2*(d-0.5))*(1-prev))*gain), prev, ratio)
	}
	return Saturate(2*d*prev*gain) * ratio
}

// CullWeight is the distance visibility cutoff for the whole ring. The inner
// ratio is deliberately not saturated: roughness and gain are tuned so the
// weight saturates on its own, and the raw ratio lets the falloff keep
// steepening past the cull distance. A non-positive cull distance evaluates
// at the boundary ratio of 1.
func CullWeight(distance, cullDistance, roughness, gain float64) float64 {
	ratio := 1.0
	if cullDistance > 0 {
		ratio = distance / cullDistance
	}
	return Saturate(ratio*roughness + gain)
}
